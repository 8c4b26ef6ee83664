package rop

import (
	"slices"
)

// Error is the immutable OperationError built by NewError
type Error struct {
	code    string
	domain  string
	message string
	inner   OperationError
}

// ErrorOption sets an optional field of an Error at construction
type ErrorOption func(e *Error)

// WithMessage sets the message describing the error
func WithMessage(message string) ErrorOption {
	return func(e *Error) {
		e.message = message
	}
}

// WithInner sets the error that caused the one being built
func WithInner(inner OperationError) ErrorOption {
	return func(e *Error) {
		if !IsNil(inner) {
			e.inner = inner
		}
	}
}

// NewError builds an Error. It panics with ErrInvalidArgument when code or
// domain is empty: the empty string stands for an absent value, so "" is never
// a valid code or domain. An empty message means no message.
func NewError(code, domain string, opts ...ErrorOption) *Error {
	mustNotBeEmpty("code", code)
	mustNotBeEmpty("domain", domain)

	e := &Error{code: code, domain: domain}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Error) Code() string {
	return e.code
}

func (e *Error) Domain() string {
	return e.domain
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) InnerError() OperationError {
	return e.inner
}

func (e *Error) Error() string {
	return formatError(e.domain, e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e.inner == nil {
		return nil
	}
	return e.inner
}

func formatError(domain, code, message string) string {
	if message == "" {
		return domain + "/" + code
	}
	return domain + "/" + code + ": " + message
}

// Equal reports whether two errors are structurally equal: same code, domain
// and message, equal inner chains and, for validation failures, equal results.
// Two nil errors are equal.
func Equal(a, b OperationError) bool {
	for {
		if IsNil(a) || IsNil(b) {
			return IsNil(a) && IsNil(b)
		}

		if a.Code() != b.Code() || a.Domain() != b.Domain() || a.Message() != b.Message() {
			return false
		}

		va, aok := a.(ValidationFailure)
		vb, bok := b.(ValidationFailure)
		if aok != bok {
			return false
		}
		if aok && !slices.EqualFunc(va.ValidationResults(), vb.ValidationResults(), ValidationResult.equal) {
			return false
		}

		a, b = a.InnerError(), b.InnerError()
	}
}
