package gls254

import (
	"hash"
	"sync"
	"unsafe"

	sha256simd "github.com/minio/sha256-simd"
)

// Tags used by this package
const (
	tagPrivateKey = "GLS254/key"
	tagECDH       = "GLS254/ecdh"
)

// Precomputed SHA256(tag) prefixes for the package tags
var (
	privateKeyTagHash  [32]byte
	ecdhTagHash        [32]byte
	taggedHashInitOnce sync.Once
)

func initTaggedHashPrefixes() {
	privateKeyTagHash = sha256simd.Sum256([]byte(tagPrivateKey))
	ecdhTagHash = sha256simd.Sum256([]byte(tagECDH))
}

// getTaggedHashPrefix returns SHA256(tag), cached for the package tags
func getTaggedHashPrefix(tag []byte) [32]byte {
	taggedHashInitOnce.Do(initTaggedHashPrefixes)

	switch string(tag) {
	case tagPrivateKey:
		return privateKeyTagHash
	case tagECDH:
		return ecdhTagHash
	}
	return sha256simd.Sum256(tag)
}

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	h := &SHA256{}
	h.hasher = sha256simd.New()
	return h
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize writes the digest to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Clear drops the hash state
func (h *SHA256) Clear() {
	h.hasher.Reset()
	memclear(unsafe.Pointer(h), unsafe.Sizeof(*h))
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data...)
func TaggedHash(tag []byte, data ...[]byte) [32]byte {
	var result [32]byte
	tagHash := getTaggedHashPrefix(tag)

	h := NewSHA256()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, d := range data {
		h.Write(d)
	}
	h.Finalize(result[:])
	h.Clear()
	return result
}

// DeriveScalar hashes data under a domain tag to a scalar. Two tagged
// hashes with a counter byte give 64 bytes, which are reduced modulo r, so
// the result is close to uniform.
func DeriveScalar(tag string, data ...[]byte) Scalar {
	var wide [64]byte
	tagHash := getTaggedHashPrefix([]byte(tag))

	for i := byte(0); i < 2; i++ {
		h := NewSHA256()
		h.Write(tagHash[:])
		h.Write(tagHash[:])
		for _, d := range data {
			h.Write(d)
		}
		h.Write([]byte{i})
		h.Finalize(wide[32*int(i) : 32*int(i)+32])
		h.Clear()
	}

	var s Scalar
	s.setWide(wide[:])
	memclear(unsafe.Pointer(&wide[0]), uintptr(len(wide)))
	return s
}
