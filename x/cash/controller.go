package cash

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
)

// Controller is the functionality needed by other extensions to move
// value around.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller operating on the default wallet
// bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Balance returns all coins owned by given address.
func (c Controller) Balance(db cattery.ReadOnlyKVStore, addr cattery.Address) (coin.Coins, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return coin.Coins(w.Coins), nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrEmpty, "no wallet for %s", addr)
	default:
		return nil, err
	}
}

// Transfer moves amount from src to dest keeping the source wallet
// alive. It satisfies the ledger required by the kitty registry.
func (c Controller) Transfer(db cattery.KVStore, src, dest cattery.Address, amount coin.Coin) error {
	return c.MoveCoins(db, src, dest, amount)
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails. When a minimum balance is configured for the
// currency, src must keep at least that much and dest must hold at least
// that much after the move. Nothing is written on failure.
func (c Controller) MoveCoins(db cattery.KVStore, src, dest cattery.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same")
	}

	var sender Wallet
	switch err := c.bucket.One(db, src, &sender); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	default:
		return err
	}
	remaining, err := coin.Coins(sender.Coins).Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "insufficient funds")
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	received, err := coin.Coins(recipient.Coins).Add(amount)
	if err != nil {
		return err
	}

	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if min := conf.MinimumBalance; min != nil && min.SameType(amount) {
		if left := remaining.Balance(amount.Ticker); !left.IsGTE(*min) {
			return errors.Wrapf(errors.ErrAmount, "source would keep %s, below minimum balance %s", left, min)
		}
		if got := received.Balance(amount.Ticker); !got.IsGTE(*min) {
			return errors.Wrapf(errors.ErrAmount, "destination would hold %s, below minimum balance %s", got, min)
		}
	}

	sender.Coins = remaining
	recipient.Coins = received
	if err := c.bucket.Save(db, src, &sender); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c Controller) IssueCoins(db cattery.KVStore, dest cattery.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	coins, err := coin.Coins(recipient.Coins).Add(amount)
	if err != nil {
		return err
	}
	recipient.Coins = coins
	return c.bucket.Save(db, dest, recipient)
}
