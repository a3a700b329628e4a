package coin

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery/errors"
)

// IsCC reports whether ticker is a currency code: three or four upper
// case letters.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Coin is an amount of one currency, counted in its smallest unit.
type Coin struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ proto.Message = (*Coin)(nil)

func (c *Coin) Reset()      { *c = Coin{} }
func (*Coin) ProtoMessage() {}

func NewCoin(amount uint64, ticker string) Coin {
	return Coin{Ticker: ticker, Amount: amount}
}

// NewCoinp is NewCoin for message fields, which hold pointers.
func NewCoinp(amount uint64, ticker string) *Coin {
	return &Coin{Ticker: ticker, Amount: amount}
}

// neutral is a zero coin without a currency. It can be added to or
// subtracted from any coin.
func (c Coin) neutral() bool {
	return c.Ticker == "" && c.Amount == 0
}

// Add returns the sum of two coins of the same currency.
func (c Coin) Add(o Coin) (Coin, error) {
	switch {
	case c.neutral():
		return o, nil
	case o.neutral():
		return c, nil
	case !c.SameType(o):
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "cannot add %s to %s", o.Ticker, c.Ticker)
	case o.Amount > math.MaxUint64-c.Amount:
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", c, o)
	}
	return Coin{Ticker: c.Ticker, Amount: c.Amount + o.Amount}, nil
}

// Subtract returns c minus o. Amounts cannot go below zero.
func (c Coin) Subtract(o Coin) (Coin, error) {
	switch {
	case o.neutral():
		return c, nil
	case !c.SameType(o) && !c.neutral():
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "cannot subtract %s from %s", o.Ticker, c.Ticker)
	case o.Amount > c.Amount:
		return Coin{}, errors.Wrapf(errors.ErrAmount, "%s is less than %s", c, o)
	}
	return Coin{Ticker: o.Ticker, Amount: c.Amount - o.Amount}, nil
}

// Compare orders two coins by amount, ignoring the currency. It returns
// -1, 0 or 1.
func (c Coin) Compare(o Coin) int {
	if c.Amount == o.Amount {
		return 0
	}
	if c.Amount < o.Amount {
		return -1
	}
	return 1
}

func (c Coin) Equals(o Coin) bool { return c == o }

func (c Coin) SameType(o Coin) bool { return c.Ticker == o.Ticker }

func (c Coin) IsZero() bool { return c.Amount == 0 }

func (c Coin) IsPositive() bool { return c.Amount > 0 }

// IsGTE reports whether c holds at least o, in the same currency.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// IsEmpty reports whether c is nil or zero.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cpy := *c
	return &cpy
}

func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "ticker %q", c.Ticker)
	}
	return nil
}

// String returns "<amount> <ticker>", the format ParseHumanFormat reads.
func (c Coin) String() string {
	if c.Ticker == "" {
		return strconv.FormatUint(c.Amount, 10)
	}
	return strconv.FormatUint(c.Amount, 10) + " " + c.Ticker
}

// UnmarshalJSON reads either the "<amount> <ticker>" string or an object
// with ticker and amount fields.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if json.Unmarshal(raw, &human) == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// A distinct type, or this method would call itself.
	type plain Coin
	var p plain
	if err := json.Unmarshal(raw, &p); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	*c = Coin(p)
	return nil
}

var humanFormat = regexp.MustCompile(`^\s*(\d+)\s*([A-Z]{3,4})\s*$`)

// ParseHumanFormat reads a coin written as "<amount> <ticker>", as in
// "100 CAT". The space is optional.
func ParseHumanFormat(s string) (Coin, error) {
	m := humanFormat.FindStringSubmatch(s)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "coin %q, want \"<amount> <ticker>\"", s)
	}
	amount, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "amount %s", m[1])
	}
	return NewCoin(amount, m[2]), nil
}
