package server

import (
	"encoding/json"
	"os"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
)

// ValidateGenesis runs the initializers on the app_state of every given
// genesis file, each in its own in-memory store. It stops at the first
// file that would not start a chain.
func ValidateGenesis(init cattery.Initializer, paths []string) error {
	if len(paths) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no genesis file given")
	}
	for _, path := range paths {
		state, err := readAppState(path)
		if err == nil {
			err = init.FromGenesis(state, store.MemStore())
		}
		if err != nil {
			return errors.Wrapf(err, "genesis %s", path)
		}
	}
	return nil
}

func readAppState(path string) (cattery.Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var genesis struct {
		AppState cattery.Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &genesis); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode: %s", err)
	}
	return genesis.AppState, nil
}
