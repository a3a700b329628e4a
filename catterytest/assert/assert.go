// Package assert holds the small set of assertions shared by the
// table-driven tests.
package assert

import (
	"reflect"

	"github.com/iov-one/cattery/errors"
)

// Tester is the part of testing.TB the assertions use.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test unless value is nil or a typed nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of errors that carry one.
		t.Fatalf("want nil, got %T: %+v", value, value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails the test unless both values are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Fatalf("not equal\nwant %T: %+v\n got %T: %+v", want, want, got, got)
}

// Panics fails the test unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("want a panic")
		}
	}()
	fn()
}

// IsErr fails the test unless got is, or wraps, the want error. A nil
// registered error matches only a nil error. On failure the ABCI codes of
// both errors are reported, as a client would see them.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	wantCode, _ := errors.ABCIInfo(want, false)
	gotCode, _ := errors.ABCIInfo(got, false)
	t.Fatalf("want error %q (code %d), got %+v (code %d)", want, wantCode, got, gotCode)
}
