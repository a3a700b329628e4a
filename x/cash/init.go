package cash

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address cattery.Address `json:"address"`
	Coins   coin.Coins      `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ cattery.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database. The configuration is loaded from the
// "conf" section when present.
func (Initializer) FromGenesis(opts cattery.Options, kv cattery.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		var coins []coin.Coin
		for _, c := range acct.Coins {
			if c != nil {
				coins = append(coins, *c)
			}
		}
		set, err := coin.CombineCoins(coins...)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		w := NewWallet()
		w.Coins = set
		if err := bucket.Save(kv, acct.Address, w); err != nil {
			return err
		}
	}

	if err := gconf.InitConfig(kv, opts, configPkg, &Configuration{}); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}
	return nil
}
