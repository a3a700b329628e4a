package cattery

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/cattery/errors"
)

var (
	// AddressLength is the size of every address. It may only be changed
	// in init, before the first address is derived.
	AddressLength = 20

	// AddressPrefix is the human readable part of bech32 addresses.
	AddressPrefix = "cat"

	// The data section is binary and may hold a newline, hence (?s).
	conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)
)

// Condition names who may authorize an action, as
// "<extension>/<type>/<data>". A public key signature is
// "sigs/ed25519/<pubkey>".
type Condition []byte

func NewCondition(ext, typ string, data []byte) Condition {
	c := make(Condition, 0, len(ext)+len(typ)+len(data)+2)
	c = append(c, ext...)
	c = append(c, '/')
	c = append(c, typ...)
	c = append(c, '/')
	return append(c, data...)
}

// Parse splits the condition into its extension, type and data.
func (c Condition) Parse() (ext, typ string, data []byte, err error) {
	m := conditionFormat.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

func (c Condition) Validate() error {
	_, _, _, err := c.Parse()
	return err
}

// Address is the owner of the condition in the state.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(o Condition) bool {
	return bytes.Equal(c, o)
}

// String keeps the extension and type readable and prints the data as hex.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("invalid condition %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// Address identifies an account or a kitty owner. It is the truncated
// sha256 of a condition, so nobody can sign for it without the key
// behind the condition.
type Address []byte

// NewAddress derives the address of data. A nil input gives a nil
// address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return sum[:AddressLength]
}

func (a Address) Equals(o Address) bool {
	return bytes.Equal(a, o)
}

func (a Address) Validate() error {
	switch len(a) {
	case 0:
		return errors.Wrap(errors.ErrEmpty, "address")
	case AddressLength:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "address %X has %d bytes", []byte(a), len(a))
	}
}

// String returns the bech32 form of the address, or its hex form if it
// cannot be encoded.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	enc, err := encodeBech32(a)
	if err != nil {
		return strings.ToUpper(hex.EncodeToString(a))
	}
	return enc
}

func encodeBech32(a Address) (string, error) {
	conv, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(AddressPrefix, conv)
}

// MarshalJSON writes the bech32 form. An empty address is "".
func (a Address) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts every form ParseAddress does.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress reads an address given in bech32, as "hex:<hex>", or as
// the condition it derives from, "cond:<ext>/<type>/<hex data>". An
// empty string gives a nil address.
func ParseAddress(enc string) (Address, error) {
	format, value, ok := strings.Cut(enc, ":")
	if !ok {
		if enc == "" {
			return nil, nil
		}
		return decodeBech32(enc)
	}
	if value == "" {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(value)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "hex address: %s", err)
		}
		addr = raw
	case "cond":
		parts := strings.Split(value, "/")
		if len(parts) != 3 {
			return nil, errors.Wrapf(errors.ErrInput, "condition %q is not ext/type/data", value)
		}
		data, err := hex.DecodeString(parts[2])
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "condition data: %s", err)
		}
		cond := NewCondition(parts[0], parts[1], data)
		if err := cond.Validate(); err != nil {
			return nil, err
		}
		addr = cond.Address()
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

func decodeBech32(enc string) (Address, error) {
	hrp, data, err := bech32.Decode(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 address: %s", err)
	}
	if hrp != AddressPrefix {
		return nil, errors.Wrapf(errors.ErrInput, "address prefix %q, want %q", hrp, AddressPrefix)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 address: %s", err)
	}
	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
