package kitty

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
)

const configPkg = "kitty"

// DefaultMaxKittiesOwned is used when the registry was never configured.
const DefaultMaxKittiesOwned = 100

// Configuration of the registry.
type Configuration struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner cattery.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/cattery.Address" json:"owner,omitempty"`
	// MaxKittiesOwned is the upper bound of kitties a single address
	// can hold.
	MaxKittiesOwned uint32 `protobuf:"varint,3,opt,name=max_kitties_owned,json=maxKittiesOwned,proto3" json:"max_kitties_owned,omitempty"`
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
	if c.MaxKittiesOwned == 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "max kitties owned must be positive"))
	}
	return errs
}

// maxKittiesOwned returns the configured ownership bound.
func maxKittiesOwned(db gconf.ReadStore) (uint32, error) {
	var conf Configuration
	switch err := gconf.Load(db, configPkg, &conf); {
	case err == nil:
		return conf.MaxKittiesOwned, nil
	case errors.ErrNotFound.Is(err):
		return DefaultMaxKittiesOwned, nil
	default:
		return 0, errors.Wrap(err, "load configuration")
	}
}
