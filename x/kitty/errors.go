package kitty

import (
	"github.com/iov-one/cattery/errors"
)

// x/kitty reserves 1100 ~ 1119.
var (
	ErrDuplicateAsset = errors.Register(1100, "kitty already exists")
	ErrTooManyOwned   = errors.Register(1101, "too many kitties owned")
	ErrNoSuchAsset    = errors.Register(1102, "no such kitty")
	ErrNotOwner       = errors.Register(1103, "not the kitty owner")
	ErrSelfTransfer   = errors.Register(1104, "transfer to self")
	ErrNotForSale     = errors.Register(1105, "kitty is not for sale")
	ErrBidTooLow      = errors.Register(1106, "bid price too low")
	ErrPaymentFailed  = errors.Register(1107, "payment failed")
)
