package kex

import (
	"crypto/rand"

	"github.com/pkg/errors"

	"gls254.mleku.dev"
)

// GLS254 implements I on the GLS254 curve.
type GLS254 struct {
	variant gls254.Variant
	key     *gls254.PrivateKey
	pub     gls254.Point
	hasPub  bool
}

// NewGLS254 returns an empty party using the given multiplication variant
// for ECDH.
func NewGLS254(v gls254.Variant) *GLS254 {
	return &GLS254{variant: v}
}

// Generate creates a fresh key pair from system entropy
func (s *GLS254) Generate() error {
	key, err := gls254.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	s.key = key
	s.pub = key.PublicKey()
	s.hasPub = true
	return nil
}

// InitSec initialises the secret key from a canonical 32-byte scalar
func (s *GLS254) InitSec(sec []byte) error {
	key, err := gls254.NewPrivateKey(sec)
	if err != nil {
		return err
	}
	s.key = key
	s.pub = key.PublicKey()
	s.hasPub = true
	return nil
}

// InitPub initialises the public key from its 32-byte encoding
func (s *GLS254) InitPub(pub []byte) error {
	p, err := gls254.NewPointFromBytes(pub)
	if err != nil {
		return err
	}
	if p.IsInfinity() {
		return errors.Wrap(gls254.ErrDecode, "public key is the neutral element")
	}
	s.key = nil
	s.pub = p
	s.hasPub = true
	return nil
}

// Sec returns the secret key bytes
func (s *GLS254) Sec() []byte {
	if s.key == nil {
		return nil
	}
	b := s.key.Bytes()
	return b[:]
}

// Pub returns the 32-byte public key encoding
func (s *GLS254) Pub() []byte {
	if !s.hasPub {
		return nil
	}
	b := s.pub.Bytes()
	return b[:]
}

// ECDH returns the raw shared secret with the peer public key
func (s *GLS254) ECDH(pub []byte) ([]byte, error) {
	if s.key == nil {
		return nil, ErrNoSecret
	}
	p, err := gls254.NewPointFromBytes(pub)
	if err != nil {
		return nil, err
	}
	k := s.key.Scalar()
	r := gls254.ScalarMult(&k, &p, s.variant)
	if r.IsInfinity() {
		return nil, errors.Wrap(gls254.ErrUndefined, "shared point is the neutral element")
	}
	b := r.Bytes()
	return b[:], nil
}

// Zero wipes the secret key
func (s *GLS254) Zero() {
	if s.key != nil {
		s.key.Zero()
		s.key = nil
	}
}
