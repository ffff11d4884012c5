package kex

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// Btcec implements I on secp256k1 using btcec. Public keys are 33-byte
// compressed points; the shared secret is the x coordinate.
type Btcec struct {
	privKey *btcec.PrivateKey
	pubKey  *btcec.PublicKey
}

// NewBtcec returns an empty secp256k1 party.
func NewBtcec() *Btcec {
	return &Btcec{}
}

// Generate creates a fresh key pair from system entropy
func (s *Btcec) Generate() error {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return err
	}
	s.privKey = privKey
	s.pubKey = privKey.PubKey()
	return nil
}

// InitSec initialises the secret key from 32 big-endian bytes
func (s *Btcec) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}
	s.privKey, s.pubKey = btcec.PrivKeyFromBytes(sec)
	if s.privKey.Key.IsZero() {
		s.privKey, s.pubKey = nil, nil
		return errors.New("secret key is zero modulo the group order")
	}
	return nil
}

// InitPub initialises the public key from a compressed point
func (s *Btcec) InitPub(pub []byte) error {
	pubKey, err := btcec.ParsePubKey(pub)
	if err != nil {
		return errors.Wrap(err, "parsing secp256k1 public key")
	}
	s.pubKey = pubKey
	s.privKey = nil
	return nil
}

// Sec returns the secret key bytes
func (s *Btcec) Sec() []byte {
	if s.privKey == nil {
		return nil
	}
	return s.privKey.Serialize()
}

// Pub returns the 33-byte compressed public key
func (s *Btcec) Pub() []byte {
	if s.pubKey == nil {
		return nil
	}
	return s.pubKey.SerializeCompressed()
}

// ECDH returns the x coordinate of the shared point
func (s *Btcec) ECDH(pub []byte) ([]byte, error) {
	if s.privKey == nil {
		return nil, ErrNoSecret
	}
	pubKey, err := btcec.ParsePubKey(pub)
	if err != nil {
		return nil, errors.Wrap(err, "parsing secp256k1 public key")
	}
	return btcec.GenerateSharedSecret(s.privKey, pubKey), nil
}

// Zero wipes the secret key
func (s *Btcec) Zero() {
	if s.privKey != nil {
		s.privKey.Zero()
		s.privKey = nil
	}
}
