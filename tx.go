package cattery

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery/errors"
)

// Persistent is anything that can be stored and transferred using the
// protobuf wire format. Models and messages are plain structs carrying
// protobuf field tags, encoded by the table driven codec.
type Persistent interface {
	proto.Message
}

// Marshal serializes given value using the protobuf codec.
func Marshal(p Persistent) ([]byte, error) {
	raw, err := proto.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrSchema, err.Error())
	}
	return raw, nil
}

// Unmarshal loads the protobuf serialized data into given destination.
func Unmarshal(raw []byte, dest Persistent) error {
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

// Msg is a state change requested by a transaction. Its signers and
// other authentication data travel in the enclosing Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler, for example "kitty/mint".
	// Paths match [0-9A-Za-z_\-/]+.
	Path() string

	// Validate checks the message on its own, without the state.
	Validate() error
}

// Tx is what a client submits: one message plus what the decorators need,
// such as signatures. Every application defines its own Tx type.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder reads a Tx from the bytes tendermint passes on.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message of tx, or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg validates the message of tx and copies it into destination,
// which must be a pointer to the message type.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "transaction without a message")
	}

	src := reflect.ValueOf(msg)
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	if src.Kind() != reflect.Ptr || src.Type() != dest.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	dest.Elem().Set(src.Elem())
	return nil
}
