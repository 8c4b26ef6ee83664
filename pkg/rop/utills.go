package rop

import (
	"context"
	"errors"
	"reflect"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrInvalidArgument is the root of every construction failure (missing code,
	// domain, error or validation results). Constructors panic with it.
	ErrInvalidArgument = goerr.New("rop: invalid argument")
	// ErrInvalidOperation is returned when a result is read in a state the caller
	// did not provide for.
	ErrInvalidOperation = goerr.New("rop: invalid operation")
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func argumentError(param, msg string) error {
	return goerr.Wrap(ErrInvalidArgument, msg, goerr.V("param", param))
}

func invalidOperation(state ResultType, msg string) error {
	return goerr.Wrap(ErrInvalidOperation, msg, goerr.V("state", state.String()))
}

func mustNotBeEmpty(param, value string) {
	if value == "" {
		panic(argumentError(param, param+" must not be empty"))
	}
}

func mustNotBeNil(param string, value interface{}) {
	if IsNil(value) {
		panic(argumentError(param, param+" must not be nil"))
	}
}
