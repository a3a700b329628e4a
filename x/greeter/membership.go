package greeter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/cattery/errors"
)

// Membership decides how many times a member can greet.
type Membership int32

const (
	Membership_Invalid  Membership = 0
	Membership_Standard Membership = 1
	Membership_Gold     Membership = 2
	Membership_Platinum Membership = 3
)

// maxMembershipName limits the raw membership input.
const maxMembershipName = 50

var membershipNames = map[Membership]string{
	Membership_Standard: "standard",
	Membership_Gold:     "gold",
	Membership_Platinum: "platinum",
}

var quotas = map[Membership]uint32{
	Membership_Standard: 1,
	Membership_Gold:     5,
	Membership_Platinum: 10,
}

// Quota returns the number of greetings allowed.
func (m Membership) Quota() uint32 {
	return quotas[m]
}

// ParseMembership returns the membership with given name. Case is ignored.
func ParseMembership(name string) (Membership, error) {
	if len(name) > maxMembershipName {
		return Membership_Invalid, errors.Wrapf(ErrInvalidUpgrade, "name longer than %d bytes", maxMembershipName)
	}
	lower := strings.ToLower(name)
	for m, n := range membershipNames {
		if n == lower {
			return m, nil
		}
	}
	return Membership_Invalid, errors.Wrapf(ErrInvalidUpgrade, "unknown membership %q", name)
}

func (m Membership) String() string {
	if name, ok := membershipNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Membership(%d)", int32(m))
}

func (m Membership) Validate() error {
	if _, ok := membershipNames[m]; !ok {
		return errors.Wrapf(errors.ErrInput, "invalid membership %d", int32(m))
	}
	return nil
}

func (m Membership) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Membership) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "membership must be a string")
	}
	parsed, err := ParseMembership(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
