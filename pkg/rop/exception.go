package rop

import (
	"time"

	"github.com/google/uuid"
)

const (
	dataErrorCode   = "ErrorCode"
	dataErrorDomain = "ErrorDomain"
)

// Exception is the raisable form of an OperationError: the value returned as a
// Go error (or panicked with) when a failure leaves code that works with results.
// Every exception is stamped with an id and a creation time.
type Exception struct {
	id        uuid.UUID
	createdAt time.Time
	code      string
	domain    string
	message   string
	cause     error
}

// NewException builds an Exception. As with NewError, an empty code or domain
// panics with ErrInvalidArgument.
func NewException(code, domain, message string, cause error) *Exception {
	mustNotBeEmpty("code", code)
	mustNotBeEmpty("domain", domain)

	return &Exception{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		code:      code,
		domain:    domain,
		message:   message,
		cause:     cause,
	}
}

// AsException converts err and its whole inner chain into exceptions, one
// exception per error. An *Exception is returned as is, keeping its id and
// cause. It panics with ErrInvalidArgument when err is nil.
func AsException(err OperationError) *Exception {
	mustNotBeNil("error", err)
	return asException(err)
}

func asException(err OperationError) *Exception {
	if ex, ok := err.(*Exception); ok {
		return ex
	}

	var cause error
	if inner := err.InnerError(); !IsNil(inner) {
		cause = asException(inner)
	}
	return NewException(err.Code(), err.Domain(), err.Message(), cause)
}

func (e *Exception) Id() uuid.UUID {
	return e.id
}

func (e *Exception) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Exception) Code() string {
	return e.code
}

func (e *Exception) Domain() string {
	return e.domain
}

func (e *Exception) Message() string {
	return e.message
}

// InnerError returns the cause only when it is an *Exception itself
func (e *Exception) InnerError() OperationError {
	if inner, ok := e.cause.(*Exception); ok && inner != nil {
		return inner
	}
	return nil
}

// Data returns a copy of the identifying fields of the exception
func (e *Exception) Data() map[string]any {
	return map[string]any{
		dataErrorCode:   e.code,
		dataErrorDomain: e.domain,
	}
}

func (e *Exception) Error() string {
	return formatError(e.domain, e.code, e.message)
}

// Unwrap returns the cause whatever its type
func (e *Exception) Unwrap() error {
	return e.cause
}
