package assert

import (
	"testing"

	"github.com/iov-one/cattery/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrEmpty,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrEmpty, "test"),
			WantFail: false,
		},
		"different": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrOverflow,
			WantFail: true,
		},
		"typed nil matches nil": {
			ErrWant:  (*errors.Error)(nil),
			ErrGot:   nil,
			WantFail: false,
		},
		"typed nil does not match an error": {
			ErrWant:  (*errors.Error)(nil),
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"one of many": {
			ErrWant:  errors.ErrAmount,
			ErrGot:   errors.Append(errors.ErrCurrency, errors.Wrap(errors.ErrAmount, "min")),
			WantFail: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var nilSlice []byte
	cases := map[string]struct {
		Value    interface{}
		WantFail bool
	}{
		"nil":           {Value: nil},
		"typed nil":     {Value: nilSlice},
		"not nil":       {Value: 1, WantFail: true},
		"non nil error": {Value: errors.ErrEmpty, WantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			Nil(mock, tc.Value)
			if failed := mock.failcalls > 0; failed != tc.WantFail {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestEqualAndPanics(t *testing.T) {
	mock := &tmock{TB: t}
	Equal(mock, []byte("kitty"), []byte("kitty"))
	Equal(mock, map[string]int{"a": 1}, map[string]int{"a": 1})
	Panics(mock, func() { panic("boom") })
	if mock.failcalls != 0 {
		t.Fatalf("unexpected failures: %d", mock.failcalls)
	}

	Equal(mock, uint64(1), 1)
	Panics(mock, func() {})
	if mock.failcalls != 2 {
		t.Fatalf("want 2 failures, got %d", mock.failcalls)
	}
}

// tmock mocks testing.TB and only counts failure calls. It ignores all other
// input.
type tmock struct {
	testing.TB
	failcalls int
}

func (t *tmock) Fatal(args ...interface{}) {
	t.TB.Log(args...)
	t.failcalls++
}

func (t *tmock) Fatalf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}
