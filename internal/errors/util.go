package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorStack returns a stack trace if one is available anywhere in the
// error's tree.
func ErrorStack(err error) string {
	var errStacks []string

	for {
		if err, ok := err.(interface{ ErrorStack() string }); ok {
			errStacks = append(errStacks, err.ErrorStack())
		}

		if err = errors.Unwrap(err); err == nil {
			break
		}
	}

	return strings.Join(errStacks, "\n")
}

// ContainsStackTrace returns true if the given error contains a stack trace.
// Useful to avoid creating a nested stack trace.
func ContainsStackTrace(err error) bool {
	for {
		if err, ok := err.(interface{ ErrorStack() string }); ok && err != nil {
			return true
		}

		if err = errors.Unwrap(err); err == nil {
			break
		}
	}

	return false
}

// Recover tries to recover from panics, and if it succeeds, calls the given
// onPanic function with an error that explains the cause of the panic. This
// function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(New(err))
	}
}
