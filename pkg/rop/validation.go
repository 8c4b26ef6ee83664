package rop

import (
	"slices"
	"strings"
)

// ValidationResult is a single validation failure: a message and the members
// (fields) it applies to. Results are computed by the caller, rop only carries them.
type ValidationResult struct {
	ErrorMessage string
	MemberNames  []string
}

// NewValidationResult is a shorthand for a result over the given members
func NewValidationResult(message string, members ...string) ValidationResult {
	return ValidationResult{ErrorMessage: message, MemberNames: members}
}

func (r ValidationResult) equal(other ValidationResult) bool {
	return r.ErrorMessage == other.ErrorMessage && slices.Equal(r.MemberNames, other.MemberNames)
}

// ValidationError is the ValidationFailure built by NewValidationError. It has
// no message and no inner error.
type ValidationError struct {
	code    string
	domain  string
	results []ValidationResult
}

// NewValidationError builds a ValidationError. It panics with ErrInvalidArgument
// when code or domain is empty or results is nil. An empty, non-nil results is valid.
func NewValidationError(code, domain string, results []ValidationResult) *ValidationError {
	mustNotBeEmpty("code", code)
	mustNotBeEmpty("domain", domain)
	if results == nil {
		panic(argumentError("validationResults", "validationResults must not be nil"))
	}

	return &ValidationError{
		code:    code,
		domain:  domain,
		results: cloneResults(results),
	}
}

func cloneResults(results []ValidationResult) []ValidationResult {
	out := make([]ValidationResult, len(results))
	for i, r := range results {
		out[i] = ValidationResult{ErrorMessage: r.ErrorMessage, MemberNames: slices.Clone(r.MemberNames)}
	}
	return out
}

func (e *ValidationError) Code() string {
	return e.code
}

func (e *ValidationError) Domain() string {
	return e.domain
}

func (e *ValidationError) Message() string {
	return ""
}

func (e *ValidationError) InnerError() OperationError {
	return nil
}

func (e *ValidationError) ValidationResults() []ValidationResult {
	return cloneResults(e.results)
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.results))
	for _, r := range e.results {
		if strings.TrimSpace(r.ErrorMessage) != "" {
			msgs = append(msgs, r.ErrorMessage)
		}
	}
	return formatError(e.domain, e.code, strings.Join(msgs, "; "))
}

// MemberErrors groups the messages of the error by member name
func (e *ValidationError) MemberErrors() map[string][]string {
	return MemberErrors(e)
}

// MemberErrors groups the validation messages of err by member name. Messages
// keep their order per member, blank messages are skipped and members left
// without messages are not in the map. It panics with ErrInvalidArgument when
// err is nil.
func MemberErrors(err ValidationFailure) map[string][]string {
	mustNotBeNil("error", err)

	members := make(map[string][]string)
	for _, r := range err.ValidationResults() {
		if strings.TrimSpace(r.ErrorMessage) == "" {
			continue
		}
		for _, name := range r.MemberNames {
			members[name] = append(members[name], r.ErrorMessage)
		}
	}
	return members
}
