package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/cattery/errors"
)

// collectRange returns all cached entries within [start, end) in
// ascending order. A nil boundary is open.
func collectRange(bt *btree.BTree, start, end []byte) []entry {
	var entries []entry
	insert := func(item btree.Item) bool {
		entries = append(entries, item.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(insert)
	case start == nil:
		bt.AscendLessThan(entry{key: end}, insert)
	case end == nil:
		bt.AscendGreaterOrEqual(entry{key: start}, insert)
	default:
		bt.AscendRange(entry{key: start}, entry{key: end}, insert)
	}
	return entries
}

// itemIter merges cached items with the iterator of the parent store.
// Cached entries shadow the parent ones with the same key and deleted
// entries hide them.
type itemIter struct {
	items     []entry
	idx       int
	ascending bool

	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentDone bool
	parentErr  error
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(items []entry, parent Iterator, ascending bool) *itemIter {
	it := &itemIter{
		items:     items,
		ascending: ascending,
		parent:    parent,
	}
	it.advanceParent()
	return it
}

func (i *itemIter) advanceParent() {
	if i.parent == nil {
		i.parentDone = true
		return
	}
	k, v, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentVal = k, v
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
		i.parentKey, i.parentVal = nil, nil
	default:
		i.parentDone = true
		i.parentErr = err
	}
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// firstKey selects the iterator that holds the next key, if any
func (i *itemIter) firstKey() source {
	ours := i.idx < len(i.items)
	if i.parentDone {
		if !ours {
			return none
		}
		return us
	} else if !ours {
		return parent
	}

	usKey := i.items[i.idx].key
	cmp := bytes.Compare(i.parentKey, usKey)
	if !i.ascending {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

// Next returns the next key value pair, skipping over deleted entries.
func (i *itemIter) Next() (key, value []byte, err error) {
	for {
		if i.parentErr != nil {
			return nil, nil, i.parentErr
		}
		switch i.firstKey() {
		case none:
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "btree iterator")
		case parent:
			key, value = i.parentKey, i.parentVal
			i.advanceParent()
			return key, value, nil
		case both:
			i.advanceParent()
			fallthrough
		case us:
			e := i.items[i.idx]
			i.idx++
			if !e.deleted {
				return e.key, e.value, nil
			}
		}
	}
}

// Release releases the Iterator.
func (i *itemIter) Release() {
	if i.parent != nil {
		i.parent.Release()
	}
	i.items = nil
}
