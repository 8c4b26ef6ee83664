package rop

import (
	"time"

	"github.com/rs/zerolog"
)

// Field names used when errors and results are logged through zerolog
const (
	LogFieldCode       = "error_code"
	LogFieldDomain     = "error_domain"
	LogFieldMessage    = "error_message"
	LogFieldInner      = "inner"
	LogFieldValidation = "validation"
	LogFieldResultType = "result_type"
	LogFieldError      = "error"
	LogFieldValue      = "value"
)

var (
	_ zerolog.LogObjectMarshaler = (*Error)(nil)
	_ zerolog.LogObjectMarshaler = (*ValidationError)(nil)
	_ zerolog.LogObjectMarshaler = (*Exception)(nil)
	_ zerolog.LogObjectMarshaler = Outcome{}
	_ zerolog.LogObjectMarshaler = Result[int]{}
)

// logError writes any OperationError, following the inner chain
func logError(e *zerolog.Event, err OperationError) {
	e.Str(LogFieldCode, err.Code()).Str(LogFieldDomain, err.Domain())
	if msg := err.Message(); msg != "" {
		e.Str(LogFieldMessage, msg)
	}
	if v, ok := err.(ValidationFailure); ok {
		e.Array(LogFieldValidation, validationLog(v.ValidationResults()))
	}
	if inner := err.InnerError(); !IsNil(inner) {
		e.Object(LogFieldInner, errorLog{inner})
	}
}

type errorLog struct {
	err OperationError
}

func (l errorLog) MarshalZerologObject(e *zerolog.Event) {
	logError(e, l.err)
}

type validationLog []ValidationResult

func (l validationLog) MarshalZerologArray(a *zerolog.Array) {
	for _, r := range l {
		a.Object(r)
	}
}

func (r ValidationResult) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message", r.ErrorMessage).Strs("members", r.MemberNames)
}

func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	logError(ev, e)
}

func (e *ValidationError) MarshalZerologObject(ev *zerolog.Event) {
	logError(ev, e)
}

func (e *Exception) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("id", e.id.String()).Str("created_at", e.createdAt.Format(time.RFC3339Nano))
	logError(ev, e)
}

func (s state) MarshalZerologObject(e *zerolog.Event) {
	e.Str(LogFieldResultType, s.resultType.String())
	if s.IsError() && !IsNil(s.err) {
		e.Object(LogFieldError, errorLog{s.err})
	}
}

// MarshalZerologObject logs the state, the error and, for Success and
// Unchanged, the value.
func (r Result[T]) MarshalZerologObject(e *zerolog.Event) {
	r.state.MarshalZerologObject(e)
	if r.IsSuccess() || r.IsUnchanged() {
		e.Interface(LogFieldValue, r.value)
	}
}
