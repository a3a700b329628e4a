package coin

import (
	"sort"

	"github.com/iov-one/cattery/errors"
)

// Coins is a wallet content: at most one positive coin per currency,
// sorted by ticker. Operations return a new set and leave the receiver
// untouched.
type Coins []*Coin

// CombineCoins sums the given coins into a normalized set.
func CombineCoins(cs ...Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		var err error
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// search returns the position of ticker in the set, or the position it
// would be inserted at, and whether it is held.
func (cs Coins) search(ticker string) (int, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Ticker >= ticker })
	return i, i < len(cs) && cs[i].Ticker == ticker
}

// Add returns the set with c added. Zero coins are ignored.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	i, found := cs.search(c.Ticker)
	res := cs.Clone()
	if !found {
		res = append(res, nil)
		copy(res[i+1:], res[i:])
		res[i] = &c
		return res, nil
	}
	sum, err := res[i].Add(c)
	if err != nil {
		return nil, err
	}
	res[i] = &sum
	return res, nil
}

// Subtract returns the set with c taken out. It fails with ErrAmount when
// the set does not hold enough of that currency.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	i, found := cs.search(c.Ticker)
	if !found {
		return nil, errors.Wrapf(errors.ErrAmount, "no %s held", c.Ticker)
	}
	rest, err := cs[i].Subtract(c)
	if err != nil {
		return nil, err
	}
	res := cs.Clone()
	if rest.IsZero() {
		return append(res[:i], res[i+1:]...), nil
	}
	res[i] = &rest
	return res, nil
}

// Balance returns the amount of ticker held, a zero coin if none.
func (cs Coins) Balance(ticker string) Coin {
	if i, found := cs.search(ticker); found {
		return *cs[i]
	}
	return Coin{Ticker: ticker}
}

// Contains reports whether the set holds at least c.
func (cs Coins) Contains(c Coin) bool {
	return c.IsZero() || cs.Balance(c.Ticker).IsGTE(c)
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate checks every coin of the set and that the set is normalized.
// All failures are reported.
func (cs Coins) Validate() error {
	var errs error
	for i, c := range cs {
		if c == nil {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrEmpty, "coin %d", i))
			continue
		}
		if err := c.Validate(); err != nil {
			errs = errors.Append(errs, err)
		}
		if c.IsZero() {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrState, "zero %s", c.Ticker))
		}
		if i > 0 && cs[i-1] != nil && cs[i-1].Ticker >= c.Ticker {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrState, "%s not sorted after %s", c.Ticker, cs[i-1].Ticker))
		}
	}
	return errs
}
