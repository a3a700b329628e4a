package catterytest

import (
	"fmt"

	"github.com/iov-one/cattery"
)

// Tx carries a single message. GetMsg returns Err along with the message,
// to simulate transactions that cannot be decoded.
type Tx struct {
	Msg cattery.Msg
	Err error
}

var _ cattery.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (cattery.Msg, error) { return tx.Msg, tx.Err }

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return fmt.Sprintf("tx(%v)", tx.Msg) }
func (*Tx) ProtoMessage()     {}

// Msg is routed to RoutePath. Validate returns Err.
type Msg struct {
	RoutePath string
	Err       error
}

var _ cattery.Msg = (*Msg)(nil)

func (m *Msg) Path() string    { return m.RoutePath }
func (m *Msg) Validate() error { return m.Err }

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "msg(" + m.RoutePath + ")" }
func (*Msg) ProtoMessage()    {}
