package kitty

import (
	"math"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/coin"
	"github.com/iov-one/cattery/errors"
)

// Ledger settles payments between accounts. The payer must stay alive
// after the transfer.
type Ledger interface {
	Transfer(db cattery.KVStore, from, to cattery.Address, amount coin.Coin) error
}

// Controller implements the registry operations. Each operation checks
// all of its preconditions before changing any state.
type Controller struct {
	ledger  Ledger
	entropy EntropySource
}

// NewController returns a registry controller settling purchases with
// given ledger and minting from given entropy.
func NewController(ledger Ledger, entropy EntropySource) Controller {
	return Controller{
		ledger:  ledger,
		entropy: entropy,
	}
}

func (c Controller) store(db cattery.KVStore) (*Store, error) {
	max, err := maxKittiesOwned(db)
	if err != nil {
		return nil, err
	}
	return NewStore(db, max), nil
}

// Mint creates a new kitty owned by the caller.
func (c Controller) Mint(ctx cattery.Context, db cattery.KVStore, caller cattery.Address, emit cattery.EventEmitter) (*Kitty, error) {
	s, err := c.store(db)
	if err != nil {
		return nil, err
	}

	dna, gender := GenerateDNA(ctx, c.entropy(ctx))
	switch exists, err := s.Contains(dna); {
	case err != nil:
		return nil, err
	case exists:
		return nil, errors.Wrapf(ErrDuplicateAsset, "dna %s", dna)
	}
	count, err := s.Count()
	if err != nil {
		return nil, err
	}
	if count == math.MaxUint64 {
		return nil, errors.Wrap(errors.ErrOverflow, "kitty count")
	}
	switch room, err := s.HasRoom(caller); {
	case err != nil:
		return nil, err
	case !room:
		return nil, errors.Wrap(ErrTooManyOwned, "mint")
	}

	k := &Kitty{
		Metadata: &cattery.Metadata{Schema: 1},
		DNA:      dna,
		Gender:   gender,
		Owner:    caller,
	}
	if err := s.AppendOwned(caller, dna); err != nil {
		return nil, err
	}
	if err := s.InsertOrReplace(k); err != nil {
		return nil, err
	}
	if _, err := s.IncrementCount(); err != nil {
		return nil, err
	}
	emit.Emit(Created{DNA: dna, Owner: caller})
	return k, nil
}

// Transfer gives the kitty to another owner and takes it off sale.
func (c Controller) Transfer(ctx cattery.Context, db cattery.KVStore, caller, to cattery.Address, dna DNA, emit cattery.EventEmitter) error {
	s, err := c.store(db)
	if err != nil {
		return err
	}
	k, err := load(s, dna)
	if err != nil {
		return err
	}
	if !k.Owner.Equals(caller) {
		return errors.Wrap(ErrNotOwner, "transfer")
	}
	if err := checkOwnershipChange(s, k, to); err != nil {
		return err
	}

	from := k.Owner
	if err := changeOwner(s, k, to); err != nil {
		return err
	}
	emit.Emit(Transferred{From: from, To: to, DNA: dna})
	return nil
}

// SetPrice lists the kitty for sale. A nil price takes it off sale.
func (c Controller) SetPrice(ctx cattery.Context, db cattery.KVStore, caller cattery.Address, dna DNA, price *coin.Coin, emit cattery.EventEmitter) error {
	if price != nil {
		if err := validatePrice(*price); err != nil {
			return errors.Wrap(err, "price")
		}
	}
	s, err := c.store(db)
	if err != nil {
		return err
	}
	k, err := load(s, dna)
	if err != nil {
		return err
	}
	if !k.Owner.Equals(caller) {
		return errors.Wrap(ErrNotOwner, "set price")
	}

	k.Price = price.Clone()
	if err := s.InsertOrReplace(k); err != nil {
		return err
	}
	emit.Emit(PriceSet{DNA: dna, Price: price.Clone()})
	return nil
}

// Buy pays the listed price from the buyer to the owner and gives the
// kitty to the buyer. The price is paid even if the bid is higher.
func (c Controller) Buy(ctx cattery.Context, db cattery.KVStore, buyer cattery.Address, dna DNA, bid coin.Coin, emit cattery.EventEmitter) error {
	s, err := c.store(db)
	if err != nil {
		return err
	}
	k, err := load(s, dna)
	if err != nil {
		return err
	}
	if err := checkOwnershipChange(s, k, buyer); err != nil {
		return err
	}
	if !k.ForSale() {
		return errors.Wrapf(ErrNotForSale, "dna %s", dna)
	}
	price := *k.Price
	if !bid.SameType(price) {
		return errors.Wrapf(errors.ErrCurrency, "bid in %s, price in %s", bid.Ticker, price.Ticker)
	}
	if bid.Compare(price) < 0 {
		return errors.Wrapf(ErrBidTooLow, "bid %s, price %s", bid, price)
	}

	seller := k.Owner
	if err := c.ledger.Transfer(db, buyer, seller, price); err != nil {
		return errors.Append(errors.Wrapf(ErrPaymentFailed, "%s to %s", price, seller), err)
	}
	// All preconditions were checked. Nothing may fail after the payment.
	if err := changeOwner(s, k, buyer); err != nil {
		return err
	}
	emit.Emit(Sold{Seller: seller, Buyer: buyer, DNA: dna, Price: price})
	emit.Emit(Transferred{From: seller, To: buyer, DNA: dna})
	return nil
}

func load(s *Store, dna DNA) (*Kitty, error) {
	k, err := s.Get(dna)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, errors.Wrapf(ErrNoSuchAsset, "dna %s", dna)
	}
	return k, nil
}

// checkOwnershipChange validates that the kitty can move from its owner
// to the recipient without changing anything.
func checkOwnershipChange(s *Store, k *Kitty, to cattery.Address) error {
	if k.Owner.Equals(to) {
		return errors.Wrap(ErrSelfTransfer, "recipient is the owner")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	owned, err := s.OwnedBy(k.Owner)
	if err != nil {
		return err
	}
	if indexOf(owned, k.DNA) < 0 {
		return errors.Wrapf(ErrNoSuchAsset, "%s is not listed for its owner", k.DNA)
	}
	switch room, err := s.HasRoom(to); {
	case err != nil:
		return err
	case !room:
		return errors.Wrap(ErrTooManyOwned, "recipient")
	}
	return nil
}

func changeOwner(s *Store, k *Kitty, to cattery.Address) error {
	if err := s.RemoveOwned(k.Owner, k.DNA); err != nil {
		return err
	}
	if err := s.AppendOwned(to, k.DNA); err != nil {
		return err
	}
	k.Owner = to
	k.Price = nil
	return s.InsertOrReplace(k)
}
