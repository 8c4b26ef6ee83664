package rop

// Handlers is the dispatch table of MatchOutcome. Cancelled has no handler.
type Handlers[R any] struct {
	OnSuccess   func() R
	OnError     func(err OperationError) R
	OnUnchanged func() R
}

// ValueHandlers is the dispatch table of Match. Cancelled has no handler.
type ValueHandlers[T, R any] struct {
	OnSuccess   func(v T) R
	OnError     func(err OperationError) R
	OnUnchanged func(v T) R
}

// AsyncHandlers is Handlers for handlers producing their value later
type AsyncHandlers[R any] Handlers[<-chan R]

// AsyncValueHandlers is ValueHandlers for handlers producing their value later
type AsyncValueHandlers[T, R any] ValueHandlers[T, <-chan R]

// MatchOutcome calls the one handler matching the state of o and returns its
// value. When that handler is nil, or o is Cancelled or Unknown, no handler is
// called and the error wraps ErrInvalidOperation.
func MatchOutcome[R any](o Outcome, h Handlers[R]) (R, error) {
	var zero R

	switch o.resultType {
	case ResultSuccess:
		if h.OnSuccess == nil {
			return zero, missingHandler(o.resultType, "OnSuccess")
		}
		return h.OnSuccess(), nil
	case ResultError:
		if h.OnError == nil {
			return zero, missingHandler(o.resultType, "OnError")
		}
		return h.OnError(o.err), nil
	case ResultUnchanged:
		if h.OnUnchanged == nil {
			return zero, missingHandler(o.resultType, "OnUnchanged")
		}
		return h.OnUnchanged(), nil
	case ResultCancelled:
		return zero, invalidOperation(o.resultType, "cancelled results cannot be matched")
	default:
		return zero, invalidOperation(o.resultType, "result is in an unknown state")
	}
}

// Match is MatchOutcome for Result[T]: OnSuccess and OnUnchanged receive the
// carried value.
func Match[T, R any](r Result[T], h ValueHandlers[T, R]) (R, error) {
	var zero R

	switch r.resultType {
	case ResultSuccess:
		if h.OnSuccess == nil {
			return zero, missingHandler(r.resultType, "OnSuccess")
		}
		return h.OnSuccess(r.value), nil
	case ResultError:
		if h.OnError == nil {
			return zero, missingHandler(r.resultType, "OnError")
		}
		return h.OnError(r.err), nil
	case ResultUnchanged:
		if h.OnUnchanged == nil {
			return zero, missingHandler(r.resultType, "OnUnchanged")
		}
		return h.OnUnchanged(r.value), nil
	case ResultCancelled:
		return zero, invalidOperation(r.resultType, "cancelled results cannot be matched")
	default:
		return zero, invalidOperation(r.resultType, "result is in an unknown state")
	}
}

// MatchOutcomeAsync dispatches like MatchOutcome and hands back the channel of
// the selected handler untouched. It starts no goroutine of its own.
func MatchOutcomeAsync[R any](o Outcome, h AsyncHandlers[R]) (<-chan R, error) {
	return MatchOutcome(o, Handlers[<-chan R](h))
}

// MatchAsync dispatches like Match and hands back the channel of the selected
// handler untouched. It starts no goroutine of its own.
func MatchAsync[T, R any](r Result[T], h AsyncValueHandlers[T, R]) (<-chan R, error) {
	return Match(r, ValueHandlers[T, <-chan R](h))
}

func missingHandler(state ResultType, handler string) error {
	return invalidOperation(state, "a "+handler+" handler is required for a "+state.String()+" result")
}
