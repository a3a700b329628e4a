package greeter

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
)

// Controller tracks greetings of members.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller operating on the default member
// bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Greet counts a greeting of the caller. An unknown caller becomes a
// standard member. A greeting beyond the quota fails without changing the
// member.
func (c Controller) Greet(db cattery.KVStore, caller cattery.Address, emit cattery.EventEmitter) (*Member, error) {
	m, err := c.bucket.Get(db, caller)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = &Member{
			Metadata:   &cattery.Metadata{Schema: 1},
			GreetCount: 1,
			Membership: Membership_Standard,
		}
		if err := c.bucket.Save(db, caller, m); err != nil {
			return nil, err
		}
		emit.Emit(AccountInitialized{User: caller})
		emit.Emit(Greeted{User: caller, Count: m.GreetCount})
		return m, nil
	}

	if !m.CanGreet() {
		return nil, errors.Wrapf(ErrQuotaExceeded, "%s member greeted %d times", m.Membership, m.GreetCount)
	}
	m.GreetCount++
	if err := c.bucket.Save(db, caller, m); err != nil {
		return nil, err
	}
	emit.Emit(Greeted{User: caller, Count: m.GreetCount})
	return m, nil
}

// AlterMembership sets the membership of the caller. The greetings made so
// far are kept.
func (c Controller) AlterMembership(db cattery.KVStore, caller cattery.Address, name string, emit cattery.EventEmitter) (*Member, error) {
	membership, err := ParseMembership(name)
	if err != nil {
		return nil, err
	}
	m, err := c.bucket.Get(db, caller)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = &Member{Metadata: &cattery.Metadata{Schema: 1}}
	}
	m.Membership = membership
	if err := c.bucket.Save(db, caller, m); err != nil {
		return nil, err
	}
	emit.Emit(MembershipUpgraded{User: caller, Membership: membership})
	return m, nil
}
