package cash

import (
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	addr := catterytest.NewCondition().Address()
	owner := catterytest.NewCondition().Address()

	cases := map[string]struct {
		opts     string
		wantErr  *errors.Error
		wantBal  coin.Coin
		wantConf *Configuration
	}{
		"empty genesis": {
			opts:     `{}`,
			wantBal:  coin.Coin{Ticker: "CAT"},
			wantConf: &Configuration{},
		},
		"accounts and configuration": {
			opts: `{
				"cash": [{"address": "` + addr.String() + `", "coins": ["10 CAT", "5 CAT", {"ticker": "DOG", "amount": 2}]}],
				"conf": {"cash": {"metadata": {"schema": 1}, "owner": "` + owner.String() + `", "minimum_balance": "1 CAT"}}
			}`,
			wantBal: coin.NewCoin(15, "CAT"),
			wantConf: &Configuration{
				Metadata:       &cattery.Metadata{Schema: 1},
				Owner:          owner,
				MinimumBalance: coin.NewCoinp(1, "CAT"),
			},
		},
		"invalid address": {
			opts:    `{"cash": [{"address": "", "coins": ["10 CAT"]}]}`,
			wantErr: errors.ErrEmpty,
		},
		"invalid configuration": {
			opts:    `{"conf": {"cash": {"owner": "` + owner.String() + `"}}}`,
			wantErr: errors.ErrMetadata,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts cattery.Options
			require.NoError(t, jsonUnmarshal(tc.opts, &opts))

			kv := store.MemStore()
			err := Initializer{}.FromGenesis(opts, kv)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)

			w, err := NewBucket().GetOrCreate(kv, addr)
			require.NoError(t, err)
			assert.Equal(t, tc.wantBal, w.Balance("CAT"))

			conf, err := loadConf(kv)
			require.NoError(t, err)
			assert.Equal(t, tc.wantConf, conf)
		})
	}
}
