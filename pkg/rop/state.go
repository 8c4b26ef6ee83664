package rop

// ResultType enumerates the states of a result
type ResultType int

const (
	// ResultUnknown is the state of a zero value result
	ResultUnknown ResultType = iota
	ResultSuccess
	ResultError
	ResultUnchanged
	ResultCancelled
)

func (t ResultType) String() string {
	switch t {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	case ResultUnchanged:
		return "unchanged"
	case ResultCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// state is embedded by Outcome and Result[T]; err is set only for ResultError
type state struct {
	resultType ResultType
	err        OperationError
}

func failed(err OperationError) state {
	mustNotBeNil("error", err)
	return state{resultType: ResultError, err: err}
}

func stateOf(r OperationResult) state {
	if r.ResultType() == ResultError {
		return failed(r.Err())
	}
	return state{resultType: r.ResultType()}
}

func (s state) ResultType() ResultType {
	return s.resultType
}

func (s state) Err() OperationError {
	return s.err
}

func (s state) IsSuccess() bool {
	return s.resultType == ResultSuccess
}

func (s state) IsError() bool {
	return s.resultType == ResultError
}

func (s state) IsUnchanged() bool {
	return s.resultType == ResultUnchanged
}

func (s state) IsCancelled() bool {
	return s.resultType == ResultCancelled
}

func (s state) IsUnknown() bool {
	return s.resultType == ResultUnknown
}

// HasValidationErrors reports whether the result failed with a ValidationFailure
func (s state) HasValidationErrors() bool {
	if !s.IsError() {
		return false
	}
	_, ok := s.err.(ValidationFailure)
	return ok
}

// ValidationResults returns the validation results of a validation failure,
// or an empty slice for any other result.
func (s state) ValidationResults() []ValidationResult {
	if v, ok := s.err.(ValidationFailure); ok && s.IsError() {
		if results := v.ValidationResults(); results != nil {
			return results
		}
	}
	return []ValidationResult{}
}

// AsException returns the failure as an exception, or nil when the result is
// not an error. It never panics.
func (s state) AsException() *Exception {
	if !s.IsError() || IsNil(s.err) {
		return nil
	}
	return asException(s.err)
}
