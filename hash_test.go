package gls254

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func taggedHashRef(tag string, data ...[]byte) [32]byte {
	th := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(th[:])
	h.Write(th[:])
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func TestTaggedHash(t *testing.T) {
	for _, tag := range []string{tagPrivateKey, tagECDH, "other", ""} {
		msg := []byte("message")
		assert.Equal(t, taggedHashRef(tag, msg), TaggedHash([]byte(tag), msg), tag)
		assert.Equal(t, taggedHashRef(tag, []byte("mess"), []byte("age")), TaggedHash([]byte(tag), []byte("mess"), []byte("age")), tag)
		assert.Equal(t, taggedHashRef(tag), TaggedHash([]byte(tag)), tag)
	}
	assert.NotEqual(t, TaggedHash([]byte(tagECDH), []byte("x")), TaggedHash([]byte(tagPrivateKey), []byte("x")))
}

func TestSHA256(t *testing.T) {
	h := NewSHA256()
	h.Write([]byte("abc"))
	var out [32]byte
	h.Finalize(out[:])
	assert.Equal(t, sha256.Sum256([]byte("abc")), out)

	assert.Panics(t, func() { h.Finalize(make([]byte, 31)) })
}

func TestDeriveScalar(t *testing.T) {
	data := []byte("seed")
	h0 := taggedHashRef("tag", data, []byte{0})
	h1 := taggedHashRef("tag", data, []byte{1})
	wide := append(h0[:], h1[:]...)
	want, err := NewScalarFromWideBytes(wide)
	assert.NoError(t, err)

	got := DeriveScalar("tag", data)
	assert.True(t, got.Equal(&want))
	assert.Equal(t, 0, got.checkOverflow())

	other := DeriveScalar("tag2", data)
	assert.False(t, got.Equal(&other))
}
