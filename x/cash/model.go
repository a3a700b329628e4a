package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet is the set of coins owned by a single address.
type Wallet struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Coins    []*coin.Coin      `protobuf:"bytes,2,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Reset()         { *w = Wallet{} }
func (w *Wallet) String() string { return proto.CompactTextString(w) }
func (*Wallet) ProtoMessage()    {}

// Validate requires that all coins are in alphabetical order.
func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return errors.Wrap(coin.Coins(w.Coins).Validate(), "coins")
}

// Balance returns the amount of given currency held in the wallet.
func (w *Wallet) Balance(ticker string) coin.Coin {
	return coin.Coins(w.Coins).Balance(ticker)
}

// NewWallet returns an empty wallet.
func NewWallet() *Wallet {
	return &Wallet{Metadata: &cattery.Metadata{Schema: 1}}
}

// Bucket is a type-safe wrapper around orm.ModelBucket
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Wallet{}),
	}
}

// GetOrCreate returns the wallet of given address, or an empty one if the
// address owns nothing yet.
func (b Bucket) GetOrCreate(db cattery.ReadOnlyKVStore, addr cattery.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return NewWallet(), nil
	default:
		return nil, err
	}
}

// Save stores the wallet under given address.
func (b Bucket) Save(db cattery.KVStore, addr cattery.Address, w *Wallet) error {
	return b.Put(db, addr, w)
}
