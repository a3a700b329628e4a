package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest/assert"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/store"
)

type tally struct {
	Metadata *cattery.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Count    uint64            `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *tally) Reset()         { *m = tally{} }
func (m *tally) String() string { return proto.CompactTextString(m) }
func (*tally) ProtoMessage()    {}

func (m *tally) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

type other struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *other) Reset()         { *m = other{} }
func (m *other) String() string { return proto.CompactTextString(m) }
func (*other) ProtoMessage()    {}
func (*other) Validate() error  { return nil }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("tally", &tally{})

	if err := b.Put(db, []byte("c1"), &tally{Metadata: &cattery.Metadata{Schema: 1}, Count: 1}); err != nil {
		t.Fatalf("cannot save tally instance: %s", err)
	}

	var c1 tally
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 tally: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected tally state: %d", c1.Count)
	}
	ok, err := b.Has(db, []byte("c1"))
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 tally: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
}

func TestModelBucketPut(t *testing.T) {
	cases := map[string]struct {
		Key     []byte
		Model   Model
		WantErr *errors.Error
	}{
		"valid": {
			Key:   []byte("a"),
			Model: &tally{Metadata: &cattery.Metadata{Schema: 1}},
		},
		"missing metadata": {
			Key:     []byte("a"),
			Model:   &tally{},
			WantErr: errors.ErrMetadata,
		},
		"empty key": {
			Key:     nil,
			Model:   &tally{Metadata: &cattery.Metadata{Schema: 1}},
			WantErr: errors.ErrEmpty,
		},
		"wrong type": {
			Key:     []byte("a"),
			Model:   &other{Name: "x"},
			WantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := NewModelBucket("tally", &tally{})
			err := b.Put(db, tc.Key, tc.Model)
			assert.IsErr(t, tc.WantErr, err)
		})
	}
}

func TestModelBucketOneWrongType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("tally", &tally{})
	assert.Nil(t, b.Put(db, []byte("a"), &tally{Metadata: &cattery.Metadata{Schema: 1}}))

	var o other
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("a"), &o))
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("tally", &tally{})
	for _, key := range []string{"aa", "ab", "b"} {
		assert.Nil(t, b.Put(db, []byte(key), &tally{Metadata: &cattery.Metadata{Schema: 1}}))
	}
	// a key of a different bucket must never be returned
	assert.Nil(t, db.Set([]byte("tallz:aa"), []byte("noise")))

	qr := cattery.NewQueryRouter()
	b.Register("", qr)
	h := qr.Handler("/tally")
	if h == nil {
		t.Fatal("handler not registered")
	}

	res, err := h.Query(db, cattery.KeyQueryMod, []byte("ab"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []byte("tally:ab"), res[0].Key)

	res, err = h.Query(db, cattery.KeyQueryMod, []byte("zz"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	res, err = h.Query(db, cattery.PrefixQueryMod, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))
	assert.Equal(t, []byte("tally:aa"), res[0].Key)
	assert.Equal(t, []byte("tally:ab"), res[1].Key)

	res, err = h.Query(db, cattery.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(res))

	_, err = h.Query(db, "range", nil)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestIllegalBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("B", &tally{}) })
}
