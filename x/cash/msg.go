package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
)

const maxMemoSize int = 128

// SendMsg moves coins from the source to the destination wallet.
type SendMsg struct {
	Metadata    *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      cattery.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/cattery.Address" json:"source,omitempty"`
	Destination cattery.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/cattery.Address" json:"destination,omitempty"`
	Amount      *coin.Coin        `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string            `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ cattery.Msg = (*SendMsg)(nil)

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(m.Metadata.Validate(), "metadata"))
	if coin.IsEmpty(m.Amount) {
		err = errors.Append(err, errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %v", m.Amount))
	} else {
		err = errors.Append(err, errors.Wrap(m.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(m.Source.Validate(), "source"))
	err = errors.Append(err, errors.Wrap(m.Destination.Validate(), "destination"))
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return err
}

// UpdateConfigurationMsg patches the ledger configuration. Zero value
// fields of the patch are ignored.
type UpdateConfigurationMsg struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration    `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

var _ cattery.Msg = (*UpdateConfigurationMsg)(nil)

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

func (*UpdateConfigurationMsg) Path() string {
	return "cash/update_configuration"
}

// Validate will skip any zero fields and validate the set ones
func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	c := m.Patch
	if c == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	var err error
	if len(c.Owner) != 0 {
		err = errors.Wrap(c.Owner.Validate(), "owner")
	}
	if c.MinimumBalance != nil {
		err = errors.Append(err, errors.Wrap(c.MinimumBalance.Validate(), "minimum balance"))
	}
	return err
}
