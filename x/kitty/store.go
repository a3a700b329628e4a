package kitty

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/orm"
)

const (
	kittyBucketName = "kitty"
	ownerBucketName = "kittyown"
	countBucketName = "kittycount"
)

var (
	kittyBucket = orm.NewModelBucket(kittyBucketName, &Kitty{})
	ownerBucket = orm.NewModelBucket(ownerBucketName, &OwnedKitties{})
	kittyCount  = orm.NewCounter(countBucketName, "total")
)

// RegisterQuery will register the kitties as "/kitties" and the ownership
// lists as "/kittyowners".
func RegisterQuery(qr cattery.QueryRouter) {
	kittyBucket.Register("kitties", qr)
	ownerBucket.Register("kittyowners", qr)
}

// Store gives access to the persisted kitties, the ownership index and
// the total count. It does not enforce any business rule beside the
// ownership bound.
type Store struct {
	db       cattery.KVStore
	maxOwned uint32
}

// NewStore returns a store bound to given database that allows at most
// maxOwned kitties per owner.
func NewStore(db cattery.KVStore, maxOwned uint32) *Store {
	return &Store{db: db, maxOwned: maxOwned}
}

// Get returns the kitty with given DNA or nil if it does not exist.
func (s *Store) Get(dna DNA) (*Kitty, error) {
	var k Kitty
	switch err := kittyBucket.One(s.db, dna, &k); {
	case err == nil:
		return &k, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// Contains returns true if a kitty with given DNA exists.
func (s *Store) Contains(dna DNA) (bool, error) {
	return kittyBucket.Has(s.db, dna)
}

// InsertOrReplace writes the kitty under its DNA.
func (s *Store) InsertOrReplace(k *Kitty) error {
	return kittyBucket.Put(s.db, k.DNA, k)
}

// OwnedBy returns the ordered list of kitties held by given owner.
func (s *Store) OwnedBy(owner cattery.Address) ([]DNA, error) {
	var owned OwnedKitties
	switch err := ownerBucket.One(s.db, owner, &owned); {
	case err == nil:
		return owned.DNAs, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// HasRoom returns true if given owner can hold one more kitty.
func (s *Store) HasRoom(owner cattery.Address) (bool, error) {
	owned, err := s.OwnedBy(owner)
	if err != nil {
		return false, err
	}
	return uint32(len(owned)) < s.maxOwned, nil
}

// AppendOwned adds the DNA at the end of the owner's list.
func (s *Store) AppendOwned(owner cattery.Address, dna DNA) error {
	owned, err := s.OwnedBy(owner)
	if err != nil {
		return err
	}
	if uint32(len(owned)) >= s.maxOwned {
		return errors.Wrapf(ErrTooManyOwned, "%s holds %d", owner, len(owned))
	}
	return s.putOwned(owner, append(owned, dna))
}

// RemoveOwned removes the DNA from the owner's list. The last element
// takes the place of the removed one.
func (s *Store) RemoveOwned(owner cattery.Address, dna DNA) error {
	owned, err := s.OwnedBy(owner)
	if err != nil {
		return err
	}
	i := indexOf(owned, dna)
	if i < 0 {
		return errors.Wrapf(ErrNoSuchAsset, "%s does not hold %s", owner, dna)
	}
	last := len(owned) - 1
	owned[i] = owned[last]
	owned = owned[:last]
	if len(owned) == 0 {
		return ownerBucket.Delete(s.db, owner)
	}
	return s.putOwned(owner, owned)
}

func (s *Store) putOwned(owner cattery.Address, dnas []DNA) error {
	owned := OwnedKitties{
		Metadata: &cattery.Metadata{Schema: 1},
		DNAs:     dnas,
	}
	return ownerBucket.Put(s.db, owner, &owned)
}

// Count returns the number of kitties ever minted.
func (s *Store) Count() (uint64, error) {
	return kittyCount.Value(s.db)
}

// IncrementCount bumps the number of minted kitties. It fails with
// ErrOverflow at the ceiling.
func (s *Store) IncrementCount() (uint64, error) {
	return kittyCount.Increment(s.db)
}

func indexOf(dnas []DNA, dna DNA) int {
	for i, d := range dnas {
		if d.Equals(dna) {
			return i
		}
	}
	return -1
}
