package app

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/x/sigs"
	"golang.org/x/crypto/ed25519"
)

// DefaultTicker is the currency of the genesis account.
const DefaultTicker = "CAT"

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The first argument overrides the ticker,
// the second one the address of the account. Without an address a key is
// generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr cattery.Address
	if len(args) > 1 {
		var err error
		addr, err = cattery.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		a, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(keys)
	}

	return GenesisState(addr, ticker)
}

// GenesisState returns the app_state giving a large balance and a gold
// membership to given address.
func GenesisState(addr cattery.Address, ticker string) (json.RawMessage, error) {
	state := map[string]interface{}{
		"cash": []interface{}{
			map[string]interface{}{
				"address": addr,
				"coins":   []string{fmt.Sprintf("123456789 %s", ticker)},
			},
		},
		"kitty":   []interface{}{},
		"greeter": []interface{}{
			map[string]interface{}{
				"address":    addr,
				"membership": "gold",
			},
		},
		"conf": map[string]interface{}{
			"cash": map[string]interface{}{
				"metadata":        map[string]int{"schema": 1},
				"owner":           addr,
				"minimum_balance": fmt.Sprintf("1 %s", ticker),
			},
			"kitty": map[string]interface{}{
				"metadata":          map[string]int{"schema": 1},
				"owner":             addr,
				"max_kitties_owned": 100,
			},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrSchema, err.Error())
	}
	return raw, nil
}

type keyOutput struct {
	Address cattery.Address `json:"address"`
	Pubkey  string          `json:"pub_key"`
	Secret  string          `json:"secret"`
}

// GenerateCoinKey returns the address of a new ed25519 public key,
// along with a json representation of the keys.
func GenerateCoinKey() (cattery.Address, string, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrHuman, err.Error())
	}
	addr := sigs.PubkeyCondition(pub).Address()

	out := keyOutput{
		Address: addr,
		Pubkey:  hex.EncodeToString(pub),
		Secret:  hex.EncodeToString(priv),
	}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrSchema, err.Error())
	}
	return addr, string(keys), nil
}
