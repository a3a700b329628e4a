package catterytest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/cattery"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() ed25519.PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return priv
}

// NewCondition returns a signature condition of a freshly generated key.
func NewCondition() cattery.Condition {
	pub := NewKey().Public().(ed25519.PublicKey)
	return cattery.NewCondition("sigs", "ed25519", pub)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) cattery.Address {
	t.Helper()

	addr, err := cattery.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
