package kitty

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
)

// Created is emitted when a new kitty is minted.
type Created struct {
	DNA   DNA
	Owner cattery.Address
}

func (Created) EventKind() string { return "kitty.created" }

func (e Created) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "dna", Value: e.DNA.String()},
		{Key: "owner", Value: e.Owner.String()},
	}
}

// Transferred is emitted whenever a kitty changes its owner.
type Transferred struct {
	From cattery.Address
	To   cattery.Address
	DNA  DNA
}

func (Transferred) EventKind() string { return "kitty.transferred" }

func (e Transferred) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "from", Value: e.From.String()},
		{Key: "to", Value: e.To.String()},
		{Key: "dna", Value: e.DNA.String()},
	}
}

// PriceSet is emitted when a kitty is listed or delisted. A nil price
// means the kitty is no longer for sale.
type PriceSet struct {
	DNA   DNA
	Price *coin.Coin
}

func (PriceSet) EventKind() string { return "kitty.price_set" }

func (e PriceSet) Attributes() []cattery.KeyValue {
	price := ""
	if e.Price != nil {
		price = e.Price.String()
	}
	return []cattery.KeyValue{
		{Key: "dna", Value: e.DNA.String()},
		{Key: "price", Value: price},
	}
}

// Sold is emitted when a kitty is bought, before the Transferred event of
// the same purchase.
type Sold struct {
	Seller cattery.Address
	Buyer  cattery.Address
	DNA    DNA
	Price  coin.Coin
}

func (Sold) EventKind() string { return "kitty.sold" }

func (e Sold) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "seller", Value: e.Seller.String()},
		{Key: "buyer", Value: e.Buyer.String()},
		{Key: "dna", Value: e.DNA.String()},
		{Key: "price", Value: e.Price.String()},
	}
}
