package server

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type memPublisher struct {
	msgs   []published
	failOn string
}

func (p *memPublisher) Publish(subject string, data []byte) error {
	if subject == p.failOn {
		return fmt.Errorf("broker unavailable")
	}
	p.msgs = append(p.msgs, published{subject: subject, data: data})
	return nil
}

type testEvent struct {
	kind string
	attr string
}

func (e testEvent) EventKind() string { return e.kind }

func (e testEvent) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{{Key: "attr", Value: e.attr}}
}

func TestNATSSinkPublish(t *testing.T) {
	pub := &memPublisher{}
	sink := NewNATSSink(pub, "cattery")

	events := []cattery.Event{
		testEvent{kind: "kitty.sold", attr: "a"},
		testEvent{kind: "kitty.transferred", attr: "b"},
	}
	require.NoError(t, sink.Publish(12, events))
	require.Len(t, pub.msgs, 2)

	assert.Equal(t, "cattery.kitty.sold", pub.msgs[0].subject)
	assert.Equal(t, "cattery.kitty.transferred", pub.msgs[1].subject)

	var msg EventMessage
	require.NoError(t, json.Unmarshal(pub.msgs[1].data, &msg))
	assert.Equal(t, EventMessage{
		Height:     12,
		Index:      1,
		Kind:       "kitty.transferred",
		Attributes: []cattery.KeyValue{{Key: "attr", Value: "b"}},
	}, msg)
}

func TestNATSSinkWithoutPrefix(t *testing.T) {
	pub := &memPublisher{}
	sink := NewNATSSink(pub, "")
	require.NoError(t, sink.Publish(1, []cattery.Event{testEvent{kind: "greeter.greeted"}}))
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "greeter.greeted", pub.msgs[0].subject)
}

func TestNATSSinkContinuesAfterFailure(t *testing.T) {
	pub := &memPublisher{failOn: "cattery.kitty.sold"}
	sink := NewNATSSink(pub, "cattery")

	err := sink.Publish(3, []cattery.Event{
		testEvent{kind: "kitty.sold"},
		testEvent{kind: "kitty.transferred"},
	})
	require.Error(t, err)
	assert.True(t, errors.ErrHuman.Is(err))

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "cattery.kitty.transferred", pub.msgs[0].subject)
}

func TestNATSSinkCloseWithoutConnection(t *testing.T) {
	// Must not panic.
	NewNATSSink(&memPublisher{}, "x").Close()
}
