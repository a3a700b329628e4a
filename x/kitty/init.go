package kitty

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
)

const optKey = "kitty"

// GenesisKitty describes a kitty that exists when the chain starts.
type GenesisKitty struct {
	DNA   DNA             `json:"dna"`
	Owner cattery.Address `json:"owner"`
	Price *coin.Coin      `json:"price,omitempty"`
}

// Initializer fulfils the Initializer interface to load the registry
// configuration and the initial kitties from the genesis file.
type Initializer struct{}

var _ cattery.Initializer = Initializer{}

// FromGenesis stores the configuration found in the "conf" section and
// the kitties listed under "kitty". Every kitty must be unique and its
// owner must have room for it.
func (Initializer) FromGenesis(opts cattery.Options, db cattery.KVStore) error {
	if err := gconf.InitConfig(db, opts, configPkg, &Configuration{}); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}

	var kitties []GenesisKitty
	if err := opts.ReadOptions(optKey, &kitties); err != nil {
		return err
	}
	max, err := maxKittiesOwned(db)
	if err != nil {
		return err
	}
	s := NewStore(db, max)
	for i, g := range kitties {
		k := &Kitty{
			Metadata: &cattery.Metadata{Schema: 1},
			DNA:      g.DNA,
			Gender:   GenderOf(g.DNA),
			Price:    g.Price,
			Owner:    g.Owner,
		}
		if err := k.Validate(); err != nil {
			return errors.Wrapf(err, "kitty %d", i)
		}
		switch exists, err := s.Contains(k.DNA); {
		case err != nil:
			return err
		case exists:
			return errors.Wrapf(ErrDuplicateAsset, "kitty %d", i)
		}
		if err := s.AppendOwned(k.Owner, k.DNA); err != nil {
			return errors.Wrapf(err, "kitty %d", i)
		}
		if err := s.InsertOrReplace(k); err != nil {
			return err
		}
		if _, err := s.IncrementCount(); err != nil {
			return err
		}
	}
	return nil
}
