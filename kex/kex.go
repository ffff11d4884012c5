// Package kex abstracts a Diffie-Hellman key exchange behind one interface,
// so that GLS254 can be swapped with secp256k1 or X25519 by the caller.
package kex

import (
	"github.com/pkg/errors"
)

// I is a key exchange party holding at most one key pair.
type I interface {
	// Generate creates a fresh key pair from system entropy.
	Generate() error
	// InitSec initialises the secret key from raw bytes and derives the
	// public key.
	InitSec(sec []byte) error
	// InitPub initialises a public-only party from raw bytes.
	InitPub(pub []byte) error
	// Sec returns the secret key bytes, or nil for a public-only party.
	Sec() []byte
	// Pub returns the public key bytes.
	Pub() []byte
	// ECDH returns the 32-byte shared secret with the peer public key.
	ECDH(pub []byte) ([]byte, error)
	// Zero wipes the secret key.
	Zero()
}

var (
	// ErrNoSecret is returned by ECDH on a party without a secret key.
	ErrNoSecret = errors.New("kex: no secret key")
)
