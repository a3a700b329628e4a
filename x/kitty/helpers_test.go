package kitty

import (
	"context"
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest/assert"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/gconf"
	"github.com/iov-one/cattery/store"
	"github.com/iov-one/cattery/x/cash"
)

// newFixture returns a database, a registry settling on the cash ledger and
// the ledger itself. A zero maxOwned keeps the default configuration.
func newFixture(t testing.TB, maxOwned uint32) (cattery.CacheableKVStore, Controller, cash.Controller) {
	t.Helper()
	db := store.MemStore()
	if maxOwned > 0 {
		conf := &Configuration{
			Metadata:        &cattery.Metadata{Schema: 1},
			MaxKittiesOwned: maxOwned,
		}
		assert.Nil(t, gconf.Save(db, configPkg, conf))
	}
	ledger := cash.NewController()
	return db, NewController(ledger, FixedEntropy("kitty seed").Source()), ledger
}

// blockCtx returns a context of a transaction at given height. Every
// height produces a different DNA.
func blockCtx(height int64) cattery.Context {
	return cattery.WithHeight(context.Background(), height)
}

func mint(t testing.TB, db cattery.KVStore, ctrl Controller, owner cattery.Address, height int64) DNA {
	t.Helper()
	k, err := ctrl.Mint(blockCtx(height), db, owner, cattery.DiscardEvents)
	assert.Nil(t, err)
	return k.DNA
}

func mustGet(t testing.TB, db cattery.KVStore, dna DNA) *Kitty {
	t.Helper()
	k, err := NewStore(db, DefaultMaxKittiesOwned).Get(dna)
	assert.Nil(t, err)
	if k == nil {
		t.Fatalf("kitty %s not found", dna)
	}
	return k
}

func balance(t testing.TB, db cattery.ReadOnlyKVStore, ledger cash.Controller, addr cattery.Address) uint64 {
	t.Helper()
	coins, err := ledger.Balance(db, addr)
	if errors.ErrEmpty.Is(err) {
		return 0
	}
	assert.Nil(t, err)
	return coins.Balance("CAT").Amount
}

func setMinimumBalance(t testing.TB, db cattery.KVStore, min coin.Coin) {
	t.Helper()
	conf := &cash.Configuration{
		Metadata:       &cattery.Metadata{Schema: 1},
		MinimumBalance: &min,
	}
	assert.Nil(t, gconf.Save(db, "cash", conf))
}

// checkInvariants ensures that every listed kitty is owned by the list
// owner and that every kitty is listed exactly once.
func checkInvariants(t testing.TB, db cattery.KVStore) {
	t.Helper()

	lists, err := ownerBucket.Query(db, cattery.PrefixQueryMod, nil)
	assert.Nil(t, err)
	seen := make(map[string]bool)
	for _, m := range lists {
		owner := cattery.Address(m.Key[len(ownerBucketName)+1:])
		var owned OwnedKitties
		assert.Nil(t, cattery.Unmarshal(m.Value, &owned))
		for _, dna := range owned.DNAs {
			if seen[string(dna)] {
				t.Fatalf("kitty %s listed more than once", dna)
			}
			seen[string(dna)] = true
			if k := mustGet(t, db, dna); !k.Owner.Equals(owner) {
				t.Fatalf("kitty %s listed for %s but owned by %s", dna, owner, k.Owner)
			}
		}
	}

	kitties, err := kittyBucket.Query(db, cattery.PrefixQueryMod, nil)
	assert.Nil(t, err)
	if len(kitties) != len(seen) {
		t.Fatalf("%d kitties but %d listed", len(kitties), len(seen))
	}
}
