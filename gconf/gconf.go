package gconf

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// ReadStore is the part of a KVStore needed to load a configuration.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of a KVStore needed to save a configuration.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is the protobuf message holding the settings of one
// extension.
type Configuration interface {
	cattery.Persistent
	Validate() error
}

// Every package has a single configuration, stored under "_c:<package>".
func key(pkg string) []byte {
	return append([]byte("_c:"), pkg...)
}

// Save validates src and writes it as the configuration of pkg.
func Save(db Store, pkg string, src Configuration) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := cattery.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "marshal %s configuration", pkg)
	}
	return db.Set(key(pkg), raw)
}

// Load reads the configuration of pkg into dst. A package that was never
// configured gives ErrNotFound.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get(key(pkg))
	switch {
	case err != nil:
		return err
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := cattery.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "unmarshal %s configuration", pkg)
	}
	return nil
}

// InitConfig saves the genesis configuration of pkg, found under
// "conf.<pkg>". It gives ErrNotFound when the genesis has none.
func InitConfig(db Store, opts cattery.Options, pkg string, conf Configuration) error {
	var all cattery.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrap(err, "genesis conf")
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s configuration in genesis", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "genesis %s configuration", pkg)
	}
	return Save(db, pkg, conf)
}
