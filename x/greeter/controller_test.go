package greeter

import (
	"testing"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/catterytest"
	"github.com/iov-one/cattery/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetNewMember(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	user := catterytest.NewCondition().Address()

	var events cattery.Events
	m, err := ctrl.Greet(db, user, &events)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), m.GreetCount)
	assert.Equal(t, Membership_Standard, m.Membership)
	assert.Equal(t, []string{"greeter.account_initialized", "greeter.greeted"}, events.Kinds())

	// The standard quota is used up.
	events = nil
	_, err = ctrl.Greet(db, user, &events)
	assert.True(t, ErrQuotaExceeded.Is(err), "got %+v", err)
	assert.Empty(t, events)

	stored, err := NewBucket().Get(db, user)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stored.GreetCount)
}

func TestGreetQuota(t *testing.T) {
	cases := map[string]struct {
		membership string
		wantQuota  int
	}{
		"standard": {membership: "standard", wantQuota: 1},
		"gold":     {membership: "gold", wantQuota: 5},
		"platinum": {membership: "platinum", wantQuota: 10},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			user := catterytest.NewCondition().Address()

			_, err := ctrl.AlterMembership(db, user, tc.membership, cattery.DiscardEvents)
			require.NoError(t, err)

			for i := 0; i < tc.wantQuota; i++ {
				var events cattery.Events
				_, err := ctrl.Greet(db, user, &events)
				require.NoError(t, err, "greeting %d", i+1)
				assert.Equal(t, []string{"greeter.greeted"}, events.Kinds())
			}
			_, err = ctrl.Greet(db, user, cattery.DiscardEvents)
			assert.True(t, ErrQuotaExceeded.Is(err), "got %+v", err)
		})
	}
}

func TestAlterMembership(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	user := catterytest.NewCondition().Address()

	// Standard member used the whole quota.
	_, err := ctrl.Greet(db, user, cattery.DiscardEvents)
	require.NoError(t, err)

	var events cattery.Events
	m, err := ctrl.AlterMembership(db, user, "GOLD", &events)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), m.GreetCount)
	assert.Equal(t, Membership_Gold, m.Membership)
	assert.Equal(t, []cattery.Event{MembershipUpgraded{User: user, Membership: Membership_Gold}}, []cattery.Event(events))

	for i := 0; i < 4; i++ {
		_, err := ctrl.Greet(db, user, cattery.DiscardEvents)
		require.NoError(t, err)
	}

	// Downgrade keeps the count, so no more greetings are allowed.
	_, err = ctrl.AlterMembership(db, user, "standard", cattery.DiscardEvents)
	require.NoError(t, err)
	_, err = ctrl.Greet(db, user, cattery.DiscardEvents)
	assert.True(t, ErrQuotaExceeded.Is(err), "got %+v", err)

	_, err = ctrl.AlterMembership(db, user, "bronze", cattery.DiscardEvents)
	assert.True(t, ErrInvalidUpgrade.Is(err), "got %+v", err)
	stored, err := NewBucket().Get(db, user)
	require.NoError(t, err)
	assert.Equal(t, Membership_Standard, stored.Membership)
	assert.Equal(t, uint32(5), stored.GreetCount)
}

func TestAlterMembershipCreatesMember(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	user := catterytest.NewCondition().Address()

	m, err := ctrl.AlterMembership(db, user, "platinum", cattery.DiscardEvents)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.GreetCount)

	var events cattery.Events
	_, err = ctrl.Greet(db, user, &events)
	require.NoError(t, err)
	assert.Equal(t, []string{"greeter.greeted"}, events.Kinds())
}
