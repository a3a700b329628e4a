package kitty

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"golang.org/x/crypto/blake2b"
)

// DNASize is the length of the kitty fingerprint in bytes.
const DNASize = 16

// DNA is the unique identifier of a kitty. It is immutable once minted.
type DNA []byte

// ParseDNA decodes a hex encoded DNA.
func ParseDNA(s string) (DNA, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "dna: %s", err)
	}
	dna := DNA(raw)
	if err := dna.Validate(); err != nil {
		return nil, err
	}
	return dna, nil
}

// Validate returns an error if the DNA is not of the expected size.
func (d DNA) Validate() error {
	if len(d) == 0 {
		return errors.Wrap(errors.ErrEmpty, "dna")
	}
	if len(d) != DNASize {
		return errors.Wrapf(errors.ErrInput, "dna must be %d bytes, got %d", DNASize, len(d))
	}
	return nil
}

// Equals returns true if both DNA are the same.
func (d DNA) Equals(o DNA) bool {
	return string(d) == string(o)
}

func (d DNA) String() string {
	return strings.ToUpper(hex.EncodeToString(d))
}

func (d DNA) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DNA) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "dna must be a hex string")
	}
	dna, err := ParseDNA(s)
	if err != nil {
		return err
	}
	*d = dna
	return nil
}

// GenerateDNA derives a new DNA from the entropy, the position of the
// transaction in the block and the block height. The result is not
// guaranteed to be unique.
func GenerateDNA(ctx cattery.Context, entropy Entropy) (DNA, Gender) {
	seed := entropy.Random([]byte("dna"))

	txIndex, _ := cattery.GetTxIndex(ctx)
	height, _ := cattery.GetHeight(ctx)

	payload := make([]byte, len(seed), len(seed)+4+8)
	copy(payload, seed)
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], txIndex)
	payload = append(payload, buf[:4]...)
	binary.LittleEndian.PutUint64(buf[:], uint64(height))
	payload = append(payload, buf[:]...)

	h, err := blake2b.New(DNASize, nil)
	if err != nil {
		// Only an invalid size or key can fail.
		panic(err)
	}
	_, _ = h.Write(payload)
	dna := DNA(h.Sum(nil))
	return dna, GenderOf(dna)
}
