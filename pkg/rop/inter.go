package rop

//go:generate mockgen -source inter.go -destination mock_inter_test.go -package rop

// OperationError is a structured error identified by a code within a domain
type OperationError interface {
	error
	// Code identifies the error within its domain
	Code() string
	// Domain namespaces the code
	Domain() string
	// Message describes the error, empty when absent
	Message() string
	// InnerError returns the error that caused this one, nil when absent
	InnerError() OperationError
}

// ValidationFailure extends OperationError with the validation results that caused it
type ValidationFailure interface {
	OperationError
	// ValidationResults returns the failures in the order they were reported
	ValidationResults() []ValidationResult
}

// OperationResult is the read side shared by Outcome and Result[T]
type OperationResult interface {
	// ResultType returns the state of the result
	ResultType() ResultType
	// Err returns the error when the state is ResultError
	Err() OperationError
}
