package coin

import (
	"testing"

	"github.com/iov-one/cattery/catterytest/assert"
	"github.com/iov-one/cattery/errors"
)

func TestCombineCoins(t *testing.T) {
	cases := map[string]struct {
		inputs   []Coin
		isEmpty  bool
		has      []Coin
		dontHave []Coin
		wantErr  *errors.Error
	}{
		"empty": {
			isEmpty:  true,
			dontHave: []Coin{NewCoin(1, "CAT")},
		},
		"ignore 0": {
			inputs:  []Coin{NewCoin(0, "CAT")},
			isEmpty: true,
			has:     []Coin{NewCoin(0, "CAT")},
		},
		"out of order": {
			inputs:   []Coin{NewCoin(20, "FIN"), NewCoin(40, "BON")},
			has:      []Coin{NewCoin(40, "BON"), NewCoin(20, "FIN")},
			dontHave: []Coin{NewCoin(41, "BON"), NewCoin(1, "CAT")},
		},
		"combine duplicates": {
			inputs: []Coin{NewCoin(12, "ADA"), NewCoin(20, "BOO"), NewCoin(22, "BOO")},
			has:    []Coin{NewCoin(12, "ADA"), NewCoin(42, "BOO")},
		},
		"invalid currency": {
			inputs:  []Coin{NewCoin(1, "AL2")},
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cs, err := CombineCoins(tc.inputs...)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.isEmpty, cs.IsEmpty())
			for _, c := range tc.has {
				if !cs.Contains(c) {
					t.Fatalf("want %s in %v", c, cs)
				}
			}
			for _, c := range tc.dontHave {
				if cs.Contains(c) {
					t.Fatalf("do not want %s in %v", c, cs)
				}
			}
		})
	}
}

func TestCoinsSubtract(t *testing.T) {
	cs, err := CombineCoins(NewCoin(10, "CAT"), NewCoin(5, "DOG"))
	assert.Nil(t, err)

	rest, err := cs.Subtract(NewCoin(5, "DOG"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(rest))
	assert.Equal(t, NewCoin(0, "DOG"), rest.Balance("DOG"))
	// original is not modified
	assert.Equal(t, NewCoin(5, "DOG"), cs.Balance("DOG"))

	rest, err = rest.Subtract(NewCoin(4, "CAT"))
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(6, "CAT"), rest.Balance("CAT"))

	_, err = rest.Subtract(NewCoin(7, "CAT"))
	assert.IsErr(t, errors.ErrAmount, err)
	_, err = rest.Subtract(NewCoin(1, "EUR"))
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestCoinsValidate(t *testing.T) {
	valid := Coins{NewCoinp(1, "ABC"), NewCoinp(2, "CAT")}
	assert.Nil(t, valid.Validate())

	unsorted := Coins{NewCoinp(1, "CAT"), NewCoinp(2, "ABC")}
	assert.IsErr(t, errors.ErrState, unsorted.Validate())

	zero := Coins{NewCoinp(0, "CAT")}
	assert.IsErr(t, errors.ErrState, zero.Validate())

	assert.Equal(t, true, valid.Equals(valid.Clone()))
	assert.Equal(t, false, valid.Equals(zero))
}
