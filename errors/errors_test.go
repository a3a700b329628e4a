package errors

import (
	stdlib "errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrUnauthorized,
			b:      ErrUnauthorized,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrUnauthorized,
			b:      ErrOverflow,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrUnauthorized,
			b:      Wrap(ErrUnauthorized, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrUnauthorized,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrUnauthorized,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrUnauthorized,
			b:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*wrappedError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrUnauthorized,
			wantIs: false,
		},
		"multi error contains": {
			a:      ErrNotFound,
			b:      Append(ErrEmpty, Wrap(ErrNotFound, "missing")),
			wantIs: true,
		},
		"multi error does not contain": {
			a:      ErrOverflow,
			b:      Append(ErrEmpty, ErrNotFound),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicatedCode(t *testing.T) {
	cases := map[string]struct {
		code      uint32
		wantPanic string
	}{
		"code of a root error": {
			code:      ErrNotFound.ABCICode(),
			wantPanic: `error code 3 is already registered as "not found"`,
		},
		"internal code": {
			code:      1,
			wantPanic: `error code 1 is already registered as "internal"`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			defer func() {
				if got := recover(); got != tc.wantPanic {
					t.Fatalf("want panic %q, got %v", tc.wantPanic, got)
				}
			}()
			Register(tc.code, "reused")
		})
	}
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	if err := run(); !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	single := stdlib.New("single")
	if err := Append(nil, single); err != single {
		t.Fatalf("want the single error returned unchanged, got %v", err)
	}
	err := Append(Append(ErrEmpty, ErrInput), ErrAmount)
	m, ok := err.(multiErr)
	if !ok {
		t.Fatalf("want multi error, got %T", err)
	}
	if len(m) != 3 {
		t.Fatalf("want a flattened list of 3 errors, got %d", len(m))
	}
	if code := abciCode(err); code != ErrEmpty.ABCICode() {
		t.Fatalf("want code of the first error, got %d", code)
	}
}
