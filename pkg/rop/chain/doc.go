// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate: run validators and fail with all their results
// - Ensure: run side effects on success without changing the result
// - Result/Outcome/Unwrap: read the end of the chain
// - Finally: collapse the chain into a final value via rop.Match
//
// Once the chain context is done, a successful chain turns Cancelled before
// its next step runs.
package chain
