package greeter

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

const optKey = "greeter"

// GenesisMember describes a member that exists when the chain starts.
type GenesisMember struct {
	Address    cattery.Address `json:"address"`
	Membership Membership      `json:"membership"`
	GreetCount uint32          `json:"greet_count"`
}

// Initializer fulfils the Initializer interface to load members from the
// genesis file.
type Initializer struct{}

var _ cattery.Initializer = Initializer{}

// FromGenesis stores every member listed under "greeter".
func (Initializer) FromGenesis(opts cattery.Options, db cattery.KVStore) error {
	var members []GenesisMember
	if err := opts.ReadOptions(optKey, &members); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, g := range members {
		if err := g.Address.Validate(); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
		m := &Member{
			Metadata:   &cattery.Metadata{Schema: 1},
			GreetCount: g.GreetCount,
			Membership: g.Membership,
		}
		if err := bucket.Save(db, g.Address, m); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
	}
	return nil
}
