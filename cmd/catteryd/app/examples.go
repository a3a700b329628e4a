package app

import (
	"bytes"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/commands"
	"github.com/iov-one/cattery/x/cash"
	"github.com/iov-one/cattery/x/greeter"
	"github.com/iov-one/cattery/x/kitty"
	"github.com/iov-one/cattery/x/sigs"
	"golang.org/x/crypto/ed25519"
)

// ExampleChainID is used to sign the example transactions.
const ExampleChainID = "cattery-examples"

// we fix the private keys here for deterministic output with the same encoding
// these are not secure at all, but the only point is to check the format,
// which is easier when everything is reproduceable.
var (
	source = makePrivKey("1234567890")
	dst    = sigs.PubkeyCondition(makePrivKey("F00BA411").Public().(ed25519.PublicKey)).Address()
)

// makePrivKey repeats the seed as long as needed to fill an ed25519 seed.
// Nothing random about it, but at least it gives us variety.
func makePrivKey(seed string) ed25519.PrivateKey {
	in := bytes.Repeat([]byte(seed), ed25519.SeedSize/len(seed)+1)[:ed25519.SeedSize]
	return ed25519.NewKeyFromSeed(in)
}

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	addr := sigs.PubkeyCondition(source.Public().(ed25519.PublicKey)).Address()
	meta := &cattery.Metadata{Schema: 1}

	wallet := &cash.Wallet{
		Metadata: meta,
		Coins:    []*coin.Coin{coin.NewCoinp(50000, "CAT")},
	}

	dna := kitty.DNA(bytes.Repeat([]byte{0xca, 0x75}, 8))
	kit := &kitty.Kitty{
		Metadata: meta,
		DNA:      dna,
		Gender:   kitty.GenderOf(dna),
		Price:    coin.NewCoinp(100, "CAT"),
		Owner:    addr,
	}

	send := &cash.SendMsg{
		Metadata:    meta,
		Source:      addr,
		Destination: dst,
		Amount:      coin.NewCoinp(500, "CAT"),
		Memo:        "Test payment",
	}
	buy := &kitty.BuyMsg{
		Metadata: meta,
		DNA:      dna,
		Bid:      coin.NewCoinp(120, "CAT"),
	}
	greet := &greeter.GreetMsg{Metadata: meta}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "kitty", Obj: kit},
		{Filename: "send_msg", Obj: send},
		{Filename: "buy_msg", Obj: buy},
		{Filename: "greet_msg", Obj: greet},
		{Filename: "unsigned_tx", Obj: mustTx(send, 0, false)},
		{Filename: "signed_tx", Obj: mustTx(buy, 3, true)},
	}
}

func mustTx(msg cattery.Msg, seq int64, sign bool) *Tx {
	tx := &Tx{}
	if err := tx.SetMsg(msg); err != nil {
		panic(err)
	}
	if !sign {
		return tx
	}
	sig, err := sigs.SignTx(source, tx, ExampleChainID, seq)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}
	return tx
}
