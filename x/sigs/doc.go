/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every signer is identified by an ed25519 public key. The first valid
signature creates the signer account holding the public key and a
sequence that must be incremented by one with every signed
transaction.
*/
package sigs
