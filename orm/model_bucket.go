package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,12}$`).MatchString
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	cattery.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	cattery.QueryHandler

	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db cattery.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db cattery.ReadOnlyKVStore, key []byte) (bool, error)

	// Put saves given model in the database. Model is validated before
	// writing.
	Put(db cattery.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db cattery.KVStore, key []byte) error

	// Register registers this bucket for queries under given path. The
	// bucket name is used when path is empty.
	Register(path string, r cattery.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance that stores models of the
// same type as given prototype under the "<name>:" key prefix.
func NewModelBucket(name string, prototype Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  reflect.TypeOf(prototype),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) One(db cattery.ReadOnlyKVStore, key []byte, dest Model) error {
	if t := reflect.TypeOf(dest); t != mb.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %s", mb.model, t)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model)
	}
	if err := cattery.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %s", mb.model)
	}
	return nil
}

func (mb *modelBucket) Has(db cattery.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot read from the database")
	}
	return ok, nil
}

func (mb *modelBucket) Put(db cattery.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %s in %q bucket", t, mb.name)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := cattery.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "cannot marshal")
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db cattery.KVStore, key []byte) error {
	ok, err := mb.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model)
	}
	return db.Delete(mb.dbKey(key))
}

// Query handles queries from the QueryRouter
func (mb *modelBucket) Query(db cattery.ReadOnlyKVStore, mod string, data []byte) ([]cattery.Model, error) {
	switch mod {
	case cattery.KeyQueryMod:
		key := mb.dbKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []cattery.Model{cattery.Pair(key, value)}, nil
	case cattery.PrefixQueryMod:
		return queryPrefix(db, mb.dbKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

func (mb *modelBucket) Register(path string, r cattery.QueryRouter) {
	if path == "" {
		path = mb.name
	}
	r.Register("/"+path, mb)
}
