package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Root errors shared by the framework and all extensions. Extensions
// register their own codes above 100.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	// ErrMsg is returned for a message that cannot be handled.
	ErrMsg       = Register(4, "invalid message")
	ErrDuplicate = Register(6, "duplicate")
	// ErrHuman marks a code path that correct code never reaches.
	ErrHuman = Register(7, "coding error")
	ErrEmpty = Register(9, "value is empty")
	// ErrState is returned when the stored state forbids an operation.
	ErrState  = Register(10, "invalid state")
	ErrType   = Register(11, "invalid type")
	ErrAmount = Register(13, "invalid amount")
	ErrInput  = Register(14, "invalid input")
	// ErrMetadata is returned for a missing or unsupported schema header.
	ErrMetadata = Register(15, "invalid metadata")
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")
	ErrCurrency = Register(17, "currency")
	// ErrDatabase wraps failures of the underlying store.
	ErrDatabase = Register(18, "database")
	// ErrSchema is returned for data that cannot be decoded.
	ErrSchema       = Register(19, "schema")
	ErrIteratorDone = Register(20, "iterator done")

	// ErrPanic wraps a recovered panic. Its message is never shown to
	// clients outside of debug mode.
	ErrPanic = Register(111222, "panic")
)

// registered maps every code to its error. Code 1 is the internal code of
// errors that were never registered.
var registered = map[uint32]*Error{1: nil}

// Register declares a root error with a unique code. It panics when the
// code is taken, so it must only be called while initializing packages.
func Register(code uint32, description string) *Error {
	if prev, ok := registered[code]; ok {
		name := "internal"
		if prev != nil {
			name = prev.desc
		}
		panic(fmt.Sprintf("error code %d is already registered as %q", code, name))
	}
	e := &Error{code: code, desc: description}
	registered[code] = e
	return e
}

// Error is a root error with an ABCI code. Errors returned at runtime
// wrap one of them, which gives the code of the response.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string    { return e.desc }
func (e Error) ABCICode() uint32 { return e.code }

// Is reports whether err is kind or wraps it. A multi error matches when
// any of its errors does. A nil kind matches only a nil error, including
// a typed nil pointer.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return errIsNil(err)
	}
	for err != nil {
		if err == kind {
			return true
		}
		if m, ok := err.(multiErr); ok {
			for _, e := range m {
				if kind.Is(e) {
					return true
				}
			}
			return false
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap adds a description in front of err. The innermost wrap records
// the stack trace. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints the stack trace of the innermost error for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover turns a panic into an ErrPanic assigned to *err. It must be
// deferred.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the cause chain of
// err, or nil.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
