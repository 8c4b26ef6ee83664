package rop

import "errors"

const (
	// CodeUnhandled and DomainRuntime identify errors built by FromErr from a
	// plain Go error that carries no OperationError.
	CodeUnhandled = "unhandled"
	DomainRuntime = "runtime"
)

// Result is the outcome of an operation returning a T. Success and Unchanged
// may carry a value, Error carries only the error.
type Result[T any] struct {
	state
	value T
}

func Success[T any](r T) Result[T] {
	return Result[T]{state: state{resultType: ResultSuccess}, value: r}
}

// Fail returns a failed Result. It panics with ErrInvalidArgument when err is nil.
func Fail[T any](err OperationError) Result[T] {
	return Result[T]{state: failed(err)}
}

// FailWith returns a Result failed with NewError(code, domain, opts...)
func FailWith[T any](code, domain string, opts ...ErrorOption) Result[T] {
	return Fail[T](NewError(code, domain, opts...))
}

// ValidationFailed returns a Result failed with a ValidationError over results
func ValidationFailed[T any](code, domain string, results []ValidationResult) Result[T] {
	return Fail[T](NewValidationError(code, domain, results))
}

func Unchanged[T any]() Result[T] {
	return Result[T]{state: state{resultType: ResultUnchanged}}
}

// UnchangedWith returns an Unchanged Result carrying the current value
func UnchangedWith[T any](r T) Result[T] {
	return Result[T]{state: state{resultType: ResultUnchanged}, value: r}
}

func Cancelled[T any]() Result[T] {
	return Result[T]{state: state{resultType: ResultCancelled}}
}

// FromException returns a Result failed with the exception
func FromException[T any](ex *Exception) Result[T] {
	return Fail[T](ex)
}

// From converts any result into a Result[T]. State and error are kept, the
// value is always the zero T: only failures and non-value states carry over.
func From[T any](r OperationResult) Result[T] {
	mustNotBeNil("result", r)
	return Result[T]{state: stateOf(r)}
}

// Propagate moves a Result to another value type, dropping the value
func Propagate[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{state: from.state}
}

// FromErr converts a Go error into a Result. An OperationError found in the
// chain of err is used as is, a context cancellation yields Cancelled and any
// other error is wrapped as CodeUnhandled in DomainRuntime. It panics with
// ErrInvalidArgument when err is nil.
func FromErr[T any](err error) Result[T] {
	mustNotBeNil("err", err)

	var opErr OperationError
	if errors.As(err, &opErr) {
		return Fail[T](opErr)
	}
	if IsCancellationError(err) {
		return Cancelled[T]()
	}
	return FailWith[T](CodeUnhandled, DomainRuntime, WithMessage(err.Error()))
}

// Value returns the value slot as is: the zero T for Error, Cancelled and
// results built without a value.
func (r Result[T]) Value() T {
	return r.value
}

// Outcome drops the value and keeps the state
func (r Result[T]) Outcome() Outcome {
	return Outcome{r.state}
}

// Unwrap narrows the Result to its value. Success and Unchanged return the
// value, Error returns the failure as an *Exception, Cancelled and Unknown
// return an error wrapping ErrInvalidOperation.
func (r Result[T]) Unwrap() (T, error) {
	var zero T

	switch r.resultType {
	case ResultSuccess, ResultUnchanged:
		return r.value, nil
	case ResultError:
		return zero, r.AsException()
	default:
		return zero, invalidOperation(r.resultType, "result carries no value")
	}
}

// MustUnwrap is like Unwrap but panics with the error
func (r Result[T]) MustUnwrap() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}
