package app

import (
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/x/cash"
	"github.com/iov-one/cattery/x/greeter"
	"github.com/iov-one/cattery/x/kitty"
	"github.com/iov-one/cattery/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxGetMsg(t *testing.T) {
	meta := &cattery.Metadata{Schema: 1}

	cases := map[string]struct {
		tx       *Tx
		wantPath string
		wantErr  *errors.Error
	}{
		"cash send": {
			tx:       &Tx{CashSendMsg: &cash.SendMsg{Metadata: meta}},
			wantPath: "cash/send",
		},
		"kitty buy": {
			tx:       &Tx{KittyBuyMsg: &kitty.BuyMsg{Metadata: meta}},
			wantPath: "kitty/buy",
		},
		"greeter alter membership": {
			tx:       &Tx{GreeterAlterMembershipMsg: &greeter.AlterMembershipMsg{Metadata: meta}},
			wantPath: "greeter/alter_membership",
		},
		"empty": {
			tx:      &Tx{},
			wantErr: errors.ErrMsg,
		},
		"two messages": {
			tx: &Tx{
				KittyCreateMsg:  &kitty.CreateKittyMsg{Metadata: meta},
				GreeterGreetMsg: &greeter.GreetMsg{Metadata: meta},
			},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, msg.Path())
		})
	}
}

func TestTxSetMsg(t *testing.T) {
	sig := &sigs.StdSignature{Sequence: 1, Pubkey: []byte{1}, Signature: []byte{2}}
	tx := &Tx{
		Signatures:     []*sigs.StdSignature{sig},
		KittyCreateMsg: &kitty.CreateKittyMsg{},
	}

	msg := &kitty.TransferMsg{Recipient: catterytest.NewCondition().Address()}
	require.NoError(t, tx.SetMsg(msg))
	assert.Nil(t, tx.KittyCreateMsg)
	assert.Equal(t, msg, tx.KittyTransferMsg)
	assert.Equal(t, []*sigs.StdSignature{sig}, tx.Signatures)

	err := tx.SetMsg(&catterytest.Msg{RoutePath: "test/msg"})
	require.Error(t, err)
	assert.True(t, errors.ErrType.Is(err))
}

func TestTxEncoding(t *testing.T) {
	meta := &cattery.Metadata{Schema: 1}
	tx := &Tx{
		KittySetPriceMsg: &kitty.SetPriceMsg{
			Metadata: meta,
			DNA:      kitty.DNA("0123456789abcdef"),
			Price:    coin.NewCoinp(10, "CAT"),
		},
	}
	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	key := makePrivKey("5eed")
	sig, err := sigs.SignTx(key, tx, testChainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	// Signatures are not part of the signed bytes.
	signBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signBytes)
	assert.Len(t, tx.Signatures, 1)

	raw, err := cattery.Marshal(tx)
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)

	got := decoded.(*Tx)
	assert.Equal(t, tx.KittySetPriceMsg.DNA, got.KittySetPriceMsg.DNA)
	assert.Equal(t, tx.KittySetPriceMsg.Price, got.KittySetPriceMsg.Price)
	require.Len(t, got.Signatures, 1)
	assert.Equal(t, sig.Signature, got.Signatures[0].Signature)

	_, err = TxDecoder([]byte{0xff, 0x01})
	require.Error(t, err)
	assert.True(t, errors.ErrSchema.Is(err))
}
