package kitty

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
)

var (
	_ cattery.Msg = (*CreateKittyMsg)(nil)
	_ cattery.Msg = (*TransferMsg)(nil)
	_ cattery.Msg = (*SetPriceMsg)(nil)
	_ cattery.Msg = (*BuyMsg)(nil)
	_ cattery.Msg = (*UpdateConfigurationMsg)(nil)
)

// CreateKittyMsg mints a new kitty for the signer.
type CreateKittyMsg struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *CreateKittyMsg) Reset()         { *m = CreateKittyMsg{} }
func (m *CreateKittyMsg) String() string { return proto.CompactTextString(m) }
func (*CreateKittyMsg) ProtoMessage()    {}

func (CreateKittyMsg) Path() string {
	return "kitty/create"
}

func (m *CreateKittyMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

// TransferMsg gives a kitty of the signer to the recipient.
type TransferMsg struct {
	Metadata  *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	DNA       DNA               `protobuf:"bytes,2,opt,name=dna,proto3,casttype=DNA" json:"dna"`
	Recipient cattery.Address   `protobuf:"bytes,3,opt,name=recipient,proto3,casttype=github.com/iov-one/cattery.Address" json:"recipient"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

func (TransferMsg) Path() string {
	return "kitty/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.DNA.Validate(), "dna"))
	errs = errors.Append(errs, errors.Wrap(m.Recipient.Validate(), "recipient"))
	return errs
}

// SetPriceMsg lists a kitty of the signer for sale. A missing price takes
// the kitty off sale.
type SetPriceMsg struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	DNA      DNA               `protobuf:"bytes,2,opt,name=dna,proto3,casttype=DNA" json:"dna"`
	Price    *coin.Coin        `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"`
}

func (m *SetPriceMsg) Reset()         { *m = SetPriceMsg{} }
func (m *SetPriceMsg) String() string { return proto.CompactTextString(m) }
func (*SetPriceMsg) ProtoMessage()    {}

func (SetPriceMsg) Path() string {
	return "kitty/set_price"
}

func (m *SetPriceMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.DNA.Validate(), "dna"))
	if m.Price != nil {
		errs = errors.Append(errs, errors.Wrap(validatePrice(*m.Price), "price"))
	}
	return errs
}

// BuyMsg purchases a kitty that is for sale. The bid must be at least the
// listed price. Only the price is paid.
type BuyMsg struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	DNA      DNA               `protobuf:"bytes,2,opt,name=dna,proto3,casttype=DNA" json:"dna"`
	Bid      *coin.Coin        `protobuf:"bytes,3,opt,name=bid,proto3" json:"bid,omitempty"`
}

func (m *BuyMsg) Reset()         { *m = BuyMsg{} }
func (m *BuyMsg) String() string { return proto.CompactTextString(m) }
func (*BuyMsg) ProtoMessage()    {}

func (BuyMsg) Path() string {
	return "kitty/buy"
}

func (m *BuyMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.DNA.Validate(), "dna"))
	if m.Bid == nil {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "bid required"))
	} else {
		errs = errors.Append(errs, errors.Wrap(m.Bid.Validate(), "bid"))
	}
	return errs
}

// UpdateConfigurationMsg patches the registry configuration.
type UpdateConfigurationMsg struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration    `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

func (*UpdateConfigurationMsg) Path() string {
	return "kitty/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	if len(m.Patch.Owner) != 0 {
		return errors.Wrap(m.Patch.Owner.Validate(), "owner")
	}
	return nil
}
