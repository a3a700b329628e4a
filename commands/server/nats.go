package server

import (
	"encoding/json"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/app"
	"github.com/iov-one/cattery/errors"
	"github.com/nats-io/nats.go"
	"github.com/tendermint/tendermint/libs/log"
)

// Publisher sends a single message. It is implemented by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes every event of a committed block as a separate JSON
// message. The subject is the configured prefix followed by the event kind,
// for example "cattery.kitty.created".
type NATSSink struct {
	pub    Publisher
	prefix string
	conn   *nats.Conn
}

var _ app.EventSink = (*NATSSink)(nil)

// NewNATSSink returns a sink publishing through given publisher.
func NewNATSSink(pub Publisher, prefix string) *NATSSink {
	return &NATSSink{pub: pub, prefix: prefix}
}

// DialNATS connects to the configured NATS server.
func DialNATS(conf NATSConfig, logger log.Logger) (*NATSSink, error) {
	opts := []nats.Option{
		nats.Name(conf.ConnectionName),
		nats.MaxReconnects(conf.MaxReconnects),
		nats.ReconnectWait(conf.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("Disconnected from NATS", "err", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
	nc, err := nats.Connect(conf.URL, opts...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot connect to NATS at %s: %s", conf.URL, err)
	}
	sink := NewNATSSink(nc, conf.Subject)
	sink.conn = nc
	return sink, nil
}

// EventMessage is the JSON payload of a published event.
type EventMessage struct {
	Height     int64              `json:"height"`
	Index      int                `json:"index"`
	Kind       string             `json:"kind"`
	Attributes []cattery.KeyValue `json:"attributes"`
}

// Publish sends all events of a block. A failing event does not stop the
// following ones from being sent, all failures are returned together.
func (s *NATSSink) Publish(height int64, events []cattery.Event) error {
	var errs error
	for i, ev := range events {
		msg := EventMessage{
			Height:     height,
			Index:      i,
			Kind:       ev.EventKind(),
			Attributes: ev.Attributes(),
		}
		data, err := json.Marshal(msg)
		if err != nil {
			errs = errors.Append(errs, errors.Wrap(errors.ErrSchema, err.Error()))
			continue
		}
		subject := s.subject(msg.Kind)
		if err := s.pub.Publish(subject, data); err != nil {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrHuman, "publish %s: %s", subject, err))
		}
	}
	return errs
}

func (s *NATSSink) subject(kind string) string {
	if s.prefix == "" {
		return kind
	}
	return s.prefix + "." + kind
}

// Close flushes pending messages and closes the connection, if this sink
// owns one.
func (s *NATSSink) Close() {
	if s.conn == nil {
		return
	}
	_ = s.conn.Flush()
	s.conn.Close()
}
