package gls254

import (
	"io"
	"unsafe"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// ECDH computes the raw Diffie-Hellman shared secret: the 32-byte encoding
// of k*p, using DefaultVariant. It returns ErrUndefined when the shared
// point is the neutral element (k = 0 or p neutral), which carries no
// secret.
func ECDH(k *Scalar, p *Point) ([32]byte, error) {
	r := ScalarMult(k, p, DefaultVariant)
	if r.IsInfinity() {
		return [32]byte{}, errors.Wrap(ErrUndefined, "shared point is the neutral element")
	}
	out := r.Bytes()
	r.clear()
	return out, nil
}

// ECDHHashFunction hashes an encoded shared point into output. It returns
// false on failure.
type ECDHHashFunction func(output []byte, point []byte) bool

// ecdhHashFunctionSHA256 is the default: the tagged hash of the encoded
// shared point
func ecdhHashFunctionSHA256(output []byte, point []byte) bool {
	if len(output) != 32 || len(point) != PointSize {
		return false
	}
	h := TaggedHash([]byte(tagECDH), point)
	copy(output, h[:])
	memclear(unsafe.Pointer(&h[0]), uintptr(len(h)))
	return true
}

// ECDHHashed computes the shared point k*p and writes hashfp(encoding) to
// output. A nil hashfp selects the tagged SHA-256 default.
func ECDHHashed(output []byte, k *Scalar, p *Point, hashfp ECDHHashFunction) error {
	if hashfp == nil {
		hashfp = ecdhHashFunctionSHA256
	}

	shared, err := ECDH(k, p)
	if err != nil {
		return err
	}

	ok := hashfp(output, shared[:])
	memclear(unsafe.Pointer(&shared[0]), uintptr(len(shared)))
	if !ok {
		return errors.New("gls254: ECDH hash function failed")
	}
	return nil
}

// ECDHWithHKDF computes the shared point k*p and expands its encoding with
// HKDF-SHA256 into output.
func ECDHWithHKDF(output []byte, k *Scalar, p *Point, salt, info []byte) error {
	if len(output) == 0 {
		return errors.New("gls254: HKDF output length must be greater than 0")
	}

	shared, err := ECDH(k, p)
	if err != nil {
		return err
	}
	defer memclear(unsafe.Pointer(&shared[0]), uintptr(len(shared)))

	kdf := hkdf.New(sha256simd.New, shared[:], salt, info)
	if _, err = io.ReadFull(kdf, output); err != nil {
		return errors.Wrap(err, "gls254: HKDF expand")
	}
	return nil
}
