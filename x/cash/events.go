package cash

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
)

// Sent is emitted when coins move between wallets.
type Sent struct {
	From   cattery.Address
	To     cattery.Address
	Amount coin.Coin
}

func (Sent) EventKind() string { return "cash.sent" }

func (e Sent) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "from", Value: e.From.String()},
		{Key: "to", Value: e.To.String()},
		{Key: "amount", Value: e.Amount.String()},
	}
}
