package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/orm"
	"golang.org/x/crypto/ed25519"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// maxSequenceValue is limited by the client. The greatest supported
// nonce value at client side is
//   Number.MAX_SAFE_INTEGER = 9007199254740991 = 2^53 - 1
const maxSequenceValue = (1 << 53) - 1

// UserData is the state of a signer account. It is created with the first
// valid signature of given public key.
type UserData struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   []byte            `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Reset()         { *u = UserData{} }
func (u *UserData) String() string { return proto.CompactTextString(u) }
func (*UserData) ProtoMessage()    {}

func (u *UserData) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(u.Metadata.Validate(), "metadata"))
	if len(u.Pubkey) != ed25519.PublicKeySize {
		errs = errors.Append(errs, errors.Wrap(errors.ErrUnauthorized, "invalid public key"))
	}
	if u.Sequence < 0 {
		errs = errors.Append(errs, errors.Wrap(ErrInvalidSequence, "negative"))
	}
	return errs
}

// Condition returns the condition fulfilled by the owner of the public key.
func (u *UserData) Condition() cattery.Condition {
	return PubkeyCondition(u.Pubkey)
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// PubkeyCondition returns the condition of an ed25519 public key owner.
func PubkeyCondition(pubkey []byte) cattery.Condition {
	return cattery.NewCondition("sigs", "ed25519", pubkey)
}

// Bucket extends orm.ModelBucket with GetOrCreate
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &UserData{}),
	}
}

// GetOrCreate loads the account of given public key owner. A new account
// with the zero sequence is returned if none exist yet. A new account is
// not saved.
func (b Bucket) GetOrCreate(db cattery.ReadOnlyKVStore, pubkey []byte) (*UserData, error) {
	key := PubkeyCondition(pubkey).Address()
	var user UserData
	switch err := b.One(db, key, &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{
			Metadata: &cattery.Metadata{Schema: 1},
			Pubkey:   pubkey,
		}, nil
	default:
		return nil, err
	}
}

// Save stores the account under the address of its public key.
func (b Bucket) Save(db cattery.KVStore, user *UserData) error {
	return b.Put(db, user.Condition().Address(), user)
}
