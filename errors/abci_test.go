package errors

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestABCInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			debug:    false,
			wantLog:  "not found",
			wantCode: ErrNotFound.code,
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrNotFound, "foo"), "bar"),
			debug:    false,
			wantLog:  "bar: foo: not found",
			wantCode: ErrNotFound.code,
		},
		"nil is empty message": {
			err:      nil,
			debug:    false,
			wantLog:  "",
			wantCode: 0,
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			debug:    false,
			wantLog:  "",
			wantCode: 0,
		},
		"stdlib is generic message": {
			err:      io.EOF,
			debug:    false,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"stdlib returns error message in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantLog:  "EOF",
			wantCode: 1,
		},
		"recovered panic is hidden": {
			err:      Wrapf(ErrPanic, "%v", "nil map"),
			debug:    false,
			wantLog:  "internal error",
			wantCode: ErrPanic.code,
		},
		"recovered panic is shown in debug mode": {
			err:      Wrapf(ErrPanic, "%v", "nil map"),
			debug:    true,
			wantLog:  "nil map",
			wantCode: ErrPanic.code,
		},
		"multi error takes the first code": {
			err:      Append(Wrap(errPaymentTest, "buy"), Wrap(ErrAmount, "minimum balance")),
			debug:    false,
			wantLog:  "2 errors occurred: buy: payment test; minimum balance: invalid amount",
			wantCode: errPaymentTest.code,
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(io.EOF, "cannot read file"),
			debug:    false,
			wantLog:  "internal error",
			wantCode: 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

// errPaymentTest stands in for an extension error wrapping a ledger failure.
var errPaymentTest = Register(4242, "payment test")

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("reduct must not pass through panic error")
	}
	if err := Redact(ErrPanic, true); !ErrPanic.Is(err) {
		t.Error("reduct should pass through panic error in debug mode")
	}

	serr := fmt.Errorf("stdlib error")
	if err := Redact(serr, false); err == serr {
		t.Error("reduct must not pass through a stdlib error")
	}
	if err := Redact(serr, true); err != serr {
		t.Error("reduct should pass through a stdlib error in debug mode")
	}
	if err := Redact(ErrUnauthorized, false); err != ErrUnauthorized {
		t.Error("registered errors are not redacted")
	}
}
