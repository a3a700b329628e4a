package cattery

import (
	"github.com/tendermint/tendermint/libs/common"
)

// Event is a notification about a state transition that happened during
// message processing. Events are collected while a transaction is delivered
// and returned together with the result.
type Event interface {
	// EventKind returns a dot separated name, for example "kitty.created".
	EventKind() string
	// Attributes returns the event details in a stable order.
	Attributes() []KeyValue
}

// KeyValue is a single event attribute.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EventEmitter is implemented by anything that can collect events.
type EventEmitter interface {
	Emit(Event)
}

// Events is an ordered collection of emitted events.
type Events []Event

var _ EventEmitter = (*Events)(nil)

// Emit appends the event.
func (e *Events) Emit(ev Event) {
	*e = append(*e, ev)
}

// Kinds returns the kind of each event, in emission order.
func (e Events) Kinds() []string {
	kinds := make([]string, len(e))
	for i, ev := range e {
		kinds[i] = ev.EventKind()
	}
	return kinds
}

// Tags converts events into a representation that tendermint can index.
// Every event produces an "event" tag holding its kind, followed by one tag
// per attribute with the key prefixed by the kind.
func (e Events) Tags() []common.KVPair {
	if len(e) == 0 {
		return nil
	}
	var tags []common.KVPair
	for _, ev := range e {
		kind := ev.EventKind()
		tags = append(tags, common.KVPair{Key: []byte("event"), Value: []byte(kind)})
		for _, a := range ev.Attributes() {
			tags = append(tags, common.KVPair{
				Key:   []byte(kind + "." + a.Key),
				Value: []byte(a.Value),
			})
		}
	}
	return tags
}

// DiscardEvents is an emitter that drops everything. It is used when
// running checks, because a check never changes the state.
var DiscardEvents EventEmitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}
