// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. Only a successful input runs the supplied function; error,
// unchanged and cancelled inputs propagate to the output type without a value.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn caller computed validation results into a failure
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try/FailOnError: call a function returning an error and convert it with rop.FromErr
// - Tee/TeeIf: side-effect helpers
// - Finally: reduce to a concrete value with one handler per state
package solo
