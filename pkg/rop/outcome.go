package rop

// Outcome is the result of an operation that returns no value
type Outcome struct {
	state
}

var (
	SuccessOutcome   = Outcome{state{resultType: ResultSuccess}}
	UnchangedOutcome = Outcome{state{resultType: ResultUnchanged}}
	CancelledOutcome = Outcome{state{resultType: ResultCancelled}}
)

// FailOutcome returns a failed Outcome. An *Exception is accepted as is. It
// panics with ErrInvalidArgument when err is nil.
func FailOutcome(err OperationError) Outcome {
	return Outcome{failed(err)}
}

// FailOutcomeWith returns an Outcome failed with NewError(code, domain, opts...)
func FailOutcomeWith(code, domain string, opts ...ErrorOption) Outcome {
	return FailOutcome(NewError(code, domain, opts...))
}

// ValidationFailedOutcome returns an Outcome failed with a ValidationError
func ValidationFailedOutcome(code, domain string, results []ValidationResult) Outcome {
	return FailOutcome(NewValidationError(code, domain, results))
}

// AsOutcome copies the state and error of any result into an Outcome
func AsOutcome(r OperationResult) Outcome {
	mustNotBeNil("result", r)
	return Outcome{stateOf(r)}
}
