package store

import (
	"github.com/iov-one/cattery/errors"
)

// SliceIterator walks a slice of models in order. Query results and the
// iavl range scans are served through it.
type SliceIterator struct {
	models []Model
	next   int
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(models []Model) *SliceIterator {
	return &SliceIterator{models: models}
}

func (s *SliceIterator) Next() (key, value []byte, err error) {
	if s.next >= len(s.models) {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice iterator")
	}
	m := s.models[s.next]
	s.next++
	return m.Key, m.Value, nil
}

func (s *SliceIterator) Release() {
	s.models = nil
}

// EmptyKVStore holds nothing and ignores writes. A cache on top of it is
// a pure in-memory store.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error)  { return nil, nil }
func (EmptyKVStore) Has([]byte) (bool, error)    { return false, nil }
func (EmptyKVStore) Set(key, value []byte) error { return nil }
func (EmptyKVStore) Delete([]byte) error         { return nil }
func (e EmptyKVStore) NewBatch() Batch           { return NewNonAtomicBatch(e) }
func (EmptyKVStore) Iterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}
func (EmptyKVStore) ReverseIterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

// Op is a recorded write, either a set or a delete of key.
type Op struct {
	key    []byte
	value  []byte
	delete bool
}

func SetOp(key, value []byte) Op { return Op{key: key, value: value} }
func DelOp(key []byte) Op        { return Op{key: key, delete: true} }

// Apply replays the operation on out.
func (o Op) Apply(out SetDeleter) error {
	if o.delete {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// IsSetOp returns the key and value of a set operation.
func (o Op) IsSetOp() (key, value []byte, ok bool) {
	if o.delete {
		return nil, nil, false
	}
	return o.key, o.value, true
}

// NonAtomicBatch queues operations and replays them one by one on Write.
// A failure half way leaves the earlier operations applied, so it only
// backs in-memory stores and caches.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write applies the queued operations in order and empties the batch.
func (b *NonAtomicBatch) Write() error {
	for i, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			b.ops = b.ops[i:]
			return errors.Wrapf(err, "batch operation %d", i)
		}
	}
	b.ops = nil
	return nil
}

// ShowOps lists the queued operations.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
