package cattery

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery/errors"
)

// Metadata is the header every persisted model carries. Schema is the
// version of the model layout and starts at 1.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

// Validate returns an error if the header is missing or the schema is not
// set.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version")
	}
	return nil
}

// Copy returns a copy of this object.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
