package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/cattery/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagForce   = "f"
	appStateKey = "app_state"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisPath returns the location of the genesis file created by
// `tendermint init` in given home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd adds the application state to the genesis file created by
// tendermint. Existing application state is only replaced when the -f flag
// is given.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := GenesisPath(home)
	if _, err := os.Stat(genFile); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "%s, run tendermint init first", genFile)
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	if err := addGenesisOptions(genFile, options, force); err != nil {
		return err
	}
	logger.Info("App state written to genesis file", "path", genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %s: %s", filename, err)
	}

	if state, ok := doc[appStateKey]; ok && !force && !isEmptyState(state) {
		return errors.Wrapf(errors.ErrDuplicate, "%s already has %s", filename, appStateKey)
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}

func isEmptyState(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(v) == 0
	}
	return false
}
