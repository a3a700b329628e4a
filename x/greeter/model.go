package greeter

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/orm"
)

// BucketName is where we store the members
const BucketName = "member"

// Member keeps track of the greetings of a single address.
type Member struct {
	Metadata   *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	GreetCount uint32            `protobuf:"varint,2,opt,name=greet_count,json=greetCount,proto3" json:"greet_count"`
	Membership Membership        `protobuf:"varint,3,opt,name=membership,proto3" json:"membership"`
}

var _ orm.Model = (*Member)(nil)

func (m *Member) Reset()         { *m = Member{} }
func (m *Member) String() string { return proto.CompactTextString(m) }
func (*Member) ProtoMessage()    {}

func (m *Member) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.Membership.Validate(), "membership"))
	return errs
}

// CanGreet returns true if the member did not use the whole quota yet.
func (m *Member) CanGreet() bool {
	return m.GreetCount < m.Membership.Quota()
}

// Bucket is a type-safe wrapper around orm.ModelBucket
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a greeter.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Member{}),
	}
}

// Get returns the member with given address or nil if the address never
// greeted nor changed its membership.
func (b Bucket) Get(db cattery.ReadOnlyKVStore, addr cattery.Address) (*Member, error) {
	var m Member
	switch err := b.One(db, addr, &m); {
	case err == nil:
		return &m, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// Save stores the member under given address.
func (b Bucket) Save(db cattery.KVStore, addr cattery.Address, m *Member) error {
	return b.Put(db, addr, m)
}
