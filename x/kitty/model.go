package kitty

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/orm"
)

// Kitty is a single non-fungible asset.
type Kitty struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	DNA      DNA               `protobuf:"bytes,2,opt,name=dna,proto3,casttype=DNA" json:"dna"`
	Gender   Gender            `protobuf:"varint,3,opt,name=gender,proto3" json:"gender"`
	// Price is nil when the kitty is not for sale.
	Price *coin.Coin      `protobuf:"bytes,4,opt,name=price,proto3" json:"price,omitempty"`
	Owner cattery.Address `protobuf:"bytes,5,opt,name=owner,proto3,casttype=github.com/iov-one/cattery.Address" json:"owner"`
}

var _ orm.Model = (*Kitty)(nil)

func (k *Kitty) Reset()         { *k = Kitty{} }
func (k *Kitty) String() string { return proto.CompactTextString(k) }
func (*Kitty) ProtoMessage()    {}

func (k *Kitty) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(k.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(k.DNA.Validate(), "dna"))
	if err := k.Gender.Validate(); err != nil {
		errs = errors.Append(errs, errors.Wrap(err, "gender"))
	} else if k.Gender != GenderOf(k.DNA) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrState, "gender does not match dna"))
	}
	if k.Price != nil {
		errs = errors.Append(errs, errors.Wrap(validatePrice(*k.Price), "price"))
	}
	errs = errors.Append(errs, errors.Wrap(k.Owner.Validate(), "owner"))
	return errs
}

// ForSale returns true if the kitty has a price set.
func (k *Kitty) ForSale() bool {
	return k.Price != nil
}

func validatePrice(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	return nil
}

// OwnedKitties is the ordered list of kitties held by a single owner.
type OwnedKitties struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	DNAs     []DNA             `protobuf:"bytes,2,rep,name=dnas,proto3,casttype=DNA" json:"dnas"`
}

var _ orm.Model = (*OwnedKitties)(nil)

func (o *OwnedKitties) Reset()         { *o = OwnedKitties{} }
func (o *OwnedKitties) String() string { return proto.CompactTextString(o) }
func (*OwnedKitties) ProtoMessage()    {}

func (o *OwnedKitties) Validate() error {
	errs := errors.Wrap(o.Metadata.Validate(), "metadata")
	for i, dna := range o.DNAs {
		errs = errors.Append(errs, errors.Wrapf(dna.Validate(), "dna %d", i))
	}
	return errs
}
