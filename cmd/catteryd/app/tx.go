package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/x/cash"
	"github.com/iov-one/cattery/x/greeter"
	"github.com/iov-one/cattery/x/kitty"
	"github.com/iov-one/cattery/x/sigs"
)

// Tx is the transaction accepted by catteryd. Exactly one of the message
// fields must be set.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`

	CashSendMsg                 *cash.SendMsg                 `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3" json:"cash_send_msg,omitempty"`
	CashUpdateConfigurationMsg  *cash.UpdateConfigurationMsg  `protobuf:"bytes,52,opt,name=cash_update_configuration_msg,json=cashUpdateConfigurationMsg,proto3" json:"cash_update_configuration_msg,omitempty"`
	KittyCreateMsg              *kitty.CreateKittyMsg         `protobuf:"bytes,60,opt,name=kitty_create_msg,json=kittyCreateMsg,proto3" json:"kitty_create_msg,omitempty"`
	KittyTransferMsg            *kitty.TransferMsg            `protobuf:"bytes,61,opt,name=kitty_transfer_msg,json=kittyTransferMsg,proto3" json:"kitty_transfer_msg,omitempty"`
	KittySetPriceMsg            *kitty.SetPriceMsg            `protobuf:"bytes,62,opt,name=kitty_set_price_msg,json=kittySetPriceMsg,proto3" json:"kitty_set_price_msg,omitempty"`
	KittyBuyMsg                 *kitty.BuyMsg                 `protobuf:"bytes,63,opt,name=kitty_buy_msg,json=kittyBuyMsg,proto3" json:"kitty_buy_msg,omitempty"`
	KittyUpdateConfigurationMsg *kitty.UpdateConfigurationMsg `protobuf:"bytes,64,opt,name=kitty_update_configuration_msg,json=kittyUpdateConfigurationMsg,proto3" json:"kitty_update_configuration_msg,omitempty"`
	GreeterGreetMsg             *greeter.GreetMsg             `protobuf:"bytes,70,opt,name=greeter_greet_msg,json=greeterGreetMsg,proto3" json:"greeter_greet_msg,omitempty"`
	GreeterAlterMembershipMsg   *greeter.AlterMembershipMsg   `protobuf:"bytes,71,opt,name=greeter_alter_membership_msg,json=greeterAlterMembershipMsg,proto3" json:"greeter_alter_membership_msg,omitempty"`
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return proto.CompactTextString(tx) }
func (*Tx) ProtoMessage()     {}

// make sure tx fulfills all interfaces
var _ cattery.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (cattery.Tx, error) {
	tx := new(Tx)
	if err := cattery.Unmarshal(bz, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the only message carried by the transaction.
func (tx *Tx) GetMsg() (cattery.Msg, error) {
	var msgs []cattery.Msg
	add := func(m cattery.Msg, isNil bool) {
		if !isNil {
			msgs = append(msgs, m)
		}
	}
	add(tx.CashSendMsg, tx.CashSendMsg == nil)
	add(tx.CashUpdateConfigurationMsg, tx.CashUpdateConfigurationMsg == nil)
	add(tx.KittyCreateMsg, tx.KittyCreateMsg == nil)
	add(tx.KittyTransferMsg, tx.KittyTransferMsg == nil)
	add(tx.KittySetPriceMsg, tx.KittySetPriceMsg == nil)
	add(tx.KittyBuyMsg, tx.KittyBuyMsg == nil)
	add(tx.KittyUpdateConfigurationMsg, tx.KittyUpdateConfigurationMsg == nil)
	add(tx.GreeterGreetMsg, tx.GreeterGreetMsg == nil)
	add(tx.GreeterAlterMembershipMsg, tx.GreeterAlterMembershipMsg == nil)

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "message container is empty")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages in a single transaction", len(msgs))
	}
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := cattery.Marshal(tx)

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// SetMsg places given message in its field, replacing any message the
// transaction carried before.
func (tx *Tx) SetMsg(msg cattery.Msg) error {
	sigs := tx.Signatures
	*tx = Tx{Signatures: sigs}
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.CashSendMsg = m
	case *cash.UpdateConfigurationMsg:
		tx.CashUpdateConfigurationMsg = m
	case *kitty.CreateKittyMsg:
		tx.KittyCreateMsg = m
	case *kitty.TransferMsg:
		tx.KittyTransferMsg = m
	case *kitty.SetPriceMsg:
		tx.KittySetPriceMsg = m
	case *kitty.BuyMsg:
		tx.KittyBuyMsg = m
	case *kitty.UpdateConfigurationMsg:
		tx.KittyUpdateConfigurationMsg = m
	case *greeter.GreetMsg:
		tx.GreeterGreetMsg = m
	case *greeter.AlterMembershipMsg:
		tx.GreeterAlterMembershipMsg = m
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}
