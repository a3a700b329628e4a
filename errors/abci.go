package errors

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode is the code of a processed transaction.
	SuccessABCICode = 0

	// Errors that are not registered share the internal code, and their
	// message is replaced unless running in debug mode.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response describing err.
//
// Registered errors keep their code and message. Errors without a code
// are reported with code 1. Outside of debug mode the message of such
// errors, and of recovered panics, is replaced with "internal error" so
// that no implementation detail reaches the client. Debug mode adds the
// stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case hidden(err, code):
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

// Redact replaces errors that ABCIInfo would hide with a generic internal
// error. Debug mode returns err unchanged.
func Redact(err error, debug bool) error {
	if debug || errIsNil(err) {
		return err
	}
	if hidden(err, abciCode(err)) {
		return errors.New(internalABCILog)
	}
	return err
}

// hidden reports whether the message of err must not be shown to clients.
func hidden(err error, code uint32) bool {
	return code == internalABCICode || ErrPanic.Is(err)
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the outermost error in the cause chain that
// has one, or the internal code.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}

// errIsNil also treats a typed nil pointer, such as (*Error)(nil), as nil.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
