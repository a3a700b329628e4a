package greeter

import (
	"strconv"

	"github.com/iov-one/cattery"
)

// AccountInitialized is emitted when an address greets for the first time.
type AccountInitialized struct {
	User cattery.Address
}

func (AccountInitialized) EventKind() string { return "greeter.account_initialized" }

func (e AccountInitialized) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{{Key: "user", Value: e.User.String()}}
}

type Greeted struct {
	User  cattery.Address
	Count uint32
}

func (Greeted) EventKind() string { return "greeter.greeted" }

func (e Greeted) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "user", Value: e.User.String()},
		{Key: "count", Value: strconv.FormatUint(uint64(e.Count), 10)},
	}
}

// MembershipUpgraded is emitted whenever a membership is set, including a
// downgrade.
type MembershipUpgraded struct {
	User       cattery.Address
	Membership Membership
}

func (MembershipUpgraded) EventKind() string { return "greeter.membership_upgraded" }

func (e MembershipUpgraded) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "user", Value: e.User.String()},
		{Key: "membership", Value: e.Membership.String()},
	}
}
