package kitty

import (
	"github.com/iov-one/cattery"
	"golang.org/x/crypto/blake2b"
)

// Entropy provides random bytes for given subject.
type Entropy interface {
	Random(subject []byte) []byte
}

// EntropySource returns the entropy available for the current block.
type EntropySource func(cattery.Context) Entropy

// BlockEntropy returns entropy derived from the block header in the
// context. It hashes the previous block hash, the application hash and
// the chain ID. Without a header only the subject contributes.
func BlockEntropy(ctx cattery.Context) Entropy {
	header, _ := cattery.GetHeader(ctx)
	return blockEntropy{
		lastBlockHash: header.LastBlockId.Hash,
		appHash:       header.AppHash,
		chainID:       header.ChainID,
	}
}

type blockEntropy struct {
	lastBlockHash []byte
	appHash       []byte
	chainID       string
}

func (e blockEntropy) Random(subject []byte) []byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	_, _ = h.Write(e.lastBlockHash)
	_, _ = h.Write(e.appHash)
	_, _ = h.Write([]byte(e.chainID))
	_, _ = h.Write(subject)
	return h.Sum(nil)
}

// FixedEntropy always returns the same seed.
type FixedEntropy []byte

func (f FixedEntropy) Random([]byte) []byte {
	return append([]byte(nil), f...)
}

// Source returns an EntropySource that ignores the context.
func (f FixedEntropy) Source() EntropySource {
	return func(cattery.Context) Entropy { return f }
}
