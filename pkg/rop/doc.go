// Package rop models the outcome of an operation as a closed set of states:
// success (optionally with a value), error, unchanged and cancelled.
//
// Key constructs:
// - Error/ValidationError: structured errors with a code, a domain and an inner chain
// - Exception: the raisable form of an error, see AsException
// - Outcome: a result without a value (SuccessOutcome, FailOutcome, ...)
// - Result[T]: a result with a value (Success, Fail, Unchanged, Cancelled, ...)
// - Match/MatchAsync: dispatch a result to the handler of its state
//
// Failures are data. They become Go errors only through Unwrap, MustUnwrap and
// AsException. Constructors panic with ErrInvalidArgument on missing arguments.
package rop
