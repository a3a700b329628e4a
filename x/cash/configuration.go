package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
)

const configPkg = "cash"

// Configuration of the ledger. It is stored with gconf and can be updated
// by its owner.
type Configuration struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner cattery.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/cattery.Address" json:"owner,omitempty"`
	// MinimumBalance is the least amount of given currency a wallet must
	// keep after paying and hold after receiving. Nil disables the check.
	MinimumBalance *coin.Coin `protobuf:"bytes,3,opt,name=minimum_balance,json=minimumBalance,proto3" json:"minimum_balance,omitempty"`
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Reset()                    { *c = Configuration{} }
func (c *Configuration) String() string            { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()               {}
func (c *Configuration) GetOwner() cattery.Address { return c.Owner }

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(c.Metadata.Validate(), "metadata"))
	if len(c.Owner) != 0 {
		errs = errors.Append(errs, errors.Wrap(c.Owner.Validate(), "owner"))
	}
	if c.MinimumBalance != nil {
		errs = errors.Append(errs, errors.Wrap(c.MinimumBalance.Validate(), "minimum balance"))
	}
	return errs
}

// loadConf returns the stored configuration or an empty one when the
// ledger was never configured.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, configPkg, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}
