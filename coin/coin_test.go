package coin

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/iov-one/cattery/catterytest/assert"
	"github.com/iov-one/cattery/errors"
)

func TestCoinAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"same currency": {
			a:    NewCoin(10, "CAT"),
			b:    NewCoin(32, "CAT"),
			want: NewCoin(42, "CAT"),
		},
		"zero without ticker is neutral": {
			a:    Coin{},
			b:    NewCoin(7, "CAT"),
			want: NewCoin(7, "CAT"),
		},
		"different currency": {
			a:       NewCoin(1, "CAT"),
			b:       NewCoin(1, "DOG"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(math.MaxUint64, "CAT"),
			b:       NewCoin(1, "CAT"),
			wantErr: errors.ErrOverflow,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCoinSubtract(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"enough funds": {
			a:    NewCoin(100, "CAT"),
			b:    NewCoin(40, "CAT"),
			want: NewCoin(60, "CAT"),
		},
		"everything": {
			a:    NewCoin(100, "CAT"),
			b:    NewCoin(100, "CAT"),
			want: NewCoin(0, "CAT"),
		},
		"not enough funds": {
			a:       NewCoin(10, "CAT"),
			b:       NewCoin(11, "CAT"),
			wantErr: errors.ErrAmount,
		},
		"different currency": {
			a:       NewCoin(10, "CAT"),
			b:       NewCoin(1, "DOG"),
			wantErr: errors.ErrCurrency,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Subtract(tc.b)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCoinCompare(t *testing.T) {
	a, b := NewCoin(5, "CAT"), NewCoin(7, "CAT")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, true, b.IsGTE(a))
	assert.Equal(t, false, a.IsGTE(b))
	assert.Equal(t, false, b.IsGTE(NewCoin(1, "DOG")))
}

func TestCoinValidate(t *testing.T) {
	assert.Nil(t, NewCoin(1, "CAT").Validate())
	assert.IsErr(t, errors.ErrCurrency, NewCoin(1, "cat").Validate())
	assert.IsErr(t, errors.ErrCurrency, NewCoin(1, "").Validate())
}

func TestCoinHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr *errors.Error
	}{
		"simple":       {raw: "100 CAT", want: NewCoin(100, "CAT")},
		"no space":     {raw: "3CAT", want: NewCoin(3, "CAT")},
		"negative":     {raw: "-3 CAT", wantErr: errors.ErrInput},
		"no ticker":    {raw: "3", wantErr: errors.ErrInput},
		"too large":    {raw: "99999999999999999999 CAT", wantErr: errors.ErrOverflow},
		"lower ticker": {raw: "1 cat", wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
				assert.Equal(t, tc.want, mustParse(t, got.String()))
			}
		})
	}
}

func TestCoinUnmarshalJSON(t *testing.T) {
	var c Coin
	assert.Nil(t, json.Unmarshal([]byte(`"12 CAT"`), &c))
	assert.Equal(t, NewCoin(12, "CAT"), c)

	assert.Nil(t, json.Unmarshal([]byte(`{"ticker": "DOG", "amount": 3}`), &c))
	assert.Equal(t, NewCoin(3, "DOG"), c)

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"twelve"`), &c))
}

func mustParse(t testing.TB, raw string) Coin {
	t.Helper()
	c, err := ParseHumanFormat(raw)
	if err != nil {
		t.Fatalf("cannot parse %q: %s", raw, err)
	}
	return c
}
