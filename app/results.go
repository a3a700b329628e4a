package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// ResultSet is the wire form of a query response. The keys and the
// values of the found models travel as two sets of the same length, in
// the Key and Value fields of abci.ResponseQuery.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (r *ResultSet) Reset()         { *r = ResultSet{} }
func (r *ResultSet) String() string { return proto.CompactTextString(r) }
func (*ResultSet) ProtoMessage()    {}

func ResultsFromKeys(models []cattery.Model) *ResultSet {
	return collect(models, func(m cattery.Model) []byte { return m.Key })
}

func ResultsFromValues(models []cattery.Model) *ResultSet {
	return collect(models, func(m cattery.Model) []byte { return m.Value })
}

func collect(models []cattery.Model, field func(cattery.Model) []byte) *ResultSet {
	set := &ResultSet{Results: make([][]byte, len(models))}
	for i, m := range models {
		set.Results[i] = field(m)
	}
	return set
}

// JoinResults pairs keys and values back into models.
func JoinResults(keys, values *ResultSet) ([]cattery.Model, error) {
	if n, m := len(keys.Results), len(values.Results); n != m {
		return nil, errors.Wrapf(errors.ErrInput, "%d keys and %d values", n, m)
	}
	models := make([]cattery.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = cattery.Pair(k, values.Results[i])
	}
	return models, nil
}

// UnmarshalOneResult decodes the first value of an encoded ResultSet
// into dst. An empty set is ErrNotFound.
func UnmarshalOneResult(raw []byte, dst cattery.Persistent) error {
	var set ResultSet
	if err := cattery.Unmarshal(raw, &set); err != nil {
		return errors.Wrap(err, "result set")
	}
	if len(set.Results) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty result set")
	}
	return cattery.Unmarshal(set.Results[0], dst)
}
