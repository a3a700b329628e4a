package greeter

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

var (
	_ cattery.Msg = (*GreetMsg)(nil)
	_ cattery.Msg = (*AlterMembershipMsg)(nil)
)

// GreetMsg is a greeting of the signer.
type GreetMsg struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GreetMsg) Reset()         { *m = GreetMsg{} }
func (m *GreetMsg) String() string { return proto.CompactTextString(m) }
func (*GreetMsg) ProtoMessage()    {}

func (GreetMsg) Path() string {
	return "greeter/greet"
}

func (m *GreetMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

// AlterMembershipMsg changes the membership of the signer. The membership
// is given by its name.
type AlterMembershipMsg struct {
	Metadata   *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Membership string            `protobuf:"bytes,2,opt,name=membership,proto3" json:"membership"`
}

func (m *AlterMembershipMsg) Reset()         { *m = AlterMembershipMsg{} }
func (m *AlterMembershipMsg) String() string { return proto.CompactTextString(m) }
func (*AlterMembershipMsg) ProtoMessage()    {}

func (AlterMembershipMsg) Path() string {
	return "greeter/alter_membership"
}

func (m *AlterMembershipMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	_, err := ParseMembership(m.Membership)
	return err
}
