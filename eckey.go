package gls254

import (
	"io"
	"unsafe"

	"github.com/pkg/errors"
)

// PrivateKey is a non-zero scalar together with its public point k*G.
type PrivateKey struct {
	k   Scalar
	pub Point
}

// NewPrivateKey builds a key from a 32-byte little-endian scalar, which
// must be canonical and non-zero.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	k, err := NewScalarFromCanonicalBytes(b)
	if err != nil {
		return nil, err
	}
	if k.IsZero() {
		return nil, wrapDecode("private key is zero")
	}
	return newPrivateKey(&k), nil
}

func newPrivateKey(k *Scalar) *PrivateKey {
	return &PrivateKey{k: *k, pub: ScalarBaseMult(k)}
}

// GenerateKey draws a private key from rand. 64 bytes are reduced modulo r,
// so the key is uniform up to a negligible bias.
func GenerateKey(rand io.Reader) (*PrivateKey, error) {
	var seed [64]byte
	defer memclear(unsafe.Pointer(&seed[0]), uintptr(len(seed)))

	for {
		if _, err := io.ReadFull(rand, seed[:]); err != nil {
			return nil, errors.Wrap(err, "gls254: reading key seed")
		}
		var k Scalar
		k.setWide(seed[:])
		if !k.IsZero() {
			key := newPrivateKey(&k)
			k.clear()
			return key, nil
		}
	}
}

// DerivePrivateKey derives a private key deterministically from secret
// input material with a tagged hash.
func DerivePrivateKey(secret []byte) (*PrivateKey, error) {
	k := DeriveScalar(tagPrivateKey, secret)
	if k.IsZero() {
		return nil, errors.Wrap(ErrUndefined, "derived private key is zero")
	}
	key := newPrivateKey(&k)
	k.clear()
	return key, nil
}

// Bytes returns the 32-byte little-endian scalar.
func (p *PrivateKey) Bytes() [ScalarSize]byte {
	return p.k.Bytes()
}

// Scalar returns the secret scalar.
func (p *PrivateKey) Scalar() Scalar {
	return p.k
}

// PublicKey returns k*G.
func (p *PrivateKey) PublicKey() Point {
	return p.pub
}

// ECDH returns the raw shared secret with the public point pub.
func (p *PrivateKey) ECDH(pub *Point) ([32]byte, error) {
	return ECDH(&p.k, pub)
}

// Zero wipes the key.
func (p *PrivateKey) Zero() {
	p.k.clear()
	p.pub.clear()
}
