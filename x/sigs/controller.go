package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"golang.org/x/crypto/ed25519"
)

// SignCodeV1 starts the bytes of every version 1 signature.
var SignCodeV1 = []byte{0, 0xCA, 0x75, 0}

// VerifyTxSignatures checks every signature of tx and bumps the sequence
// of each signer. It returns the conditions of the signers, in the order
// of the signatures, or the first failure.
func VerifyTxSignatures(db cattery.KVStore, tx SignedTx, chainID string) ([]cattery.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	var signers []cattery.Condition
	for i, sig := range tx.GetSignatures() {
		signer, err := VerifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// VerifySignature checks one signature of payload. The signature must
// carry the next sequence of its key, which is then stored.
func VerifySignature(db cattery.KVStore, sig *StdSignature, payload []byte, chainID string) (cattery.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	pubkey := ed25519.PublicKey(sig.Pubkey)
	if len(pubkey) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "public key of %d bytes", len(pubkey))
	}

	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !ed25519.Verify(pubkey, digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	users := NewBucket()
	user, err := users.GetOrCreate(db, pubkey)
	if err != nil {
		return nil, err
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := users.Save(db, user); err != nil {
		return nil, err
	}
	return user.Condition(), nil
}

// BuildSignBytes returns the sha512 digest a key signs for payload:
//
//	SignCodeV1 | len(chainID) as one byte | chainID | seq as big endian int64 | payload
//
// A signature is valid for one sequence on one chain.
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "negative sequence %d", seq)
	}
	if !cattery.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))
	h.Write(nonce[:])
	h.Write(payload)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes for the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	return BuildSignBytes(payload, chainID, seq)
}

// SignTx signs tx with key for the given sequence.
func SignTx(key ed25519.PrivateKey, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    key.Public().(ed25519.PublicKey),
		Signature: ed25519.Sign(key, digest),
		Sequence:  seq,
	}, nil
}
