package kex

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
	"github.com/pkg/errors"
)

// X25519 implements I on Curve25519 using circl.
type X25519 struct {
	sec       x25519.Key
	pub       x25519.Key
	hasSecret bool
	hasPub    bool
}

// NewX25519 returns an empty X25519 party.
func NewX25519() *X25519 {
	return &X25519{}
}

// Generate creates a fresh key pair from system entropy
func (s *X25519) Generate() error {
	var sec x25519.Key
	if _, err := io.ReadFull(rand.Reader, sec[:]); err != nil {
		return errors.Wrap(err, "reading x25519 secret")
	}
	return s.InitSec(sec[:])
}

// InitSec initialises the secret key from 32 bytes
func (s *X25519) InitSec(sec []byte) error {
	if len(sec) != x25519.Size {
		return errors.Errorf("secret key must be %d bytes", x25519.Size)
	}
	copy(s.sec[:], sec)
	x25519.KeyGen(&s.pub, &s.sec)
	s.hasSecret = true
	s.hasPub = true
	return nil
}

// InitPub initialises the public key from 32 bytes
func (s *X25519) InitPub(pub []byte) error {
	if len(pub) != x25519.Size {
		return errors.Errorf("public key must be %d bytes", x25519.Size)
	}
	s.Zero()
	copy(s.pub[:], pub)
	s.hasPub = true
	return nil
}

// Sec returns the secret key bytes
func (s *X25519) Sec() []byte {
	if !s.hasSecret {
		return nil
	}
	return append([]byte(nil), s.sec[:]...)
}

// Pub returns the public key bytes
func (s *X25519) Pub() []byte {
	if !s.hasPub {
		return nil
	}
	return append([]byte(nil), s.pub[:]...)
}

// ECDH returns the X25519 shared secret with the peer public key
func (s *X25519) ECDH(pub []byte) ([]byte, error) {
	if !s.hasSecret {
		return nil, ErrNoSecret
	}
	if len(pub) != x25519.Size {
		return nil, errors.Errorf("public key must be %d bytes", x25519.Size)
	}
	var peer, shared x25519.Key
	copy(peer[:], pub)
	if !x25519.Shared(&shared, &s.sec, &peer) {
		return nil, errors.New("x25519 shared secret is all zero")
	}
	return shared[:], nil
}

// Zero wipes the secret key
func (s *X25519) Zero() {
	for i := range s.sec {
		s.sec[i] = 0
	}
	s.hasSecret = false
}
