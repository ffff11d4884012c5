package gls254

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrivateKey(t *testing.T) {
	key, err := NewPrivateKey(mustHex(t, scalarA))
	require.NoError(t, err)
	pub := key.PublicKey()
	assert.Equal(t, ecdhPubA, encodeHex(&pub))
	b := key.Bytes()
	assert.Equal(t, mustHex(t, scalarA), b[:])
	k := key.Scalar()
	want := mustScalar(t, scalarA)
	assert.True(t, k.Equal(&want))

	tests := []struct {
		name string
		in   []byte
	}{
		{"zero", make([]byte, 32)},
		{"order", mustHex(t, orderHex)},
		{"short", make([]byte, 31)},
		{"long", make([]byte, 33)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPrivateKey(tc.in)
			assert.True(t, errors.Is(err, ErrDecode))
		})
	}
}

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	k2, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	p1, p2 := k1.PublicKey(), k2.PublicKey()
	assert.True(t, p1.IsOnCurve())
	assert.False(t, p1.IsInfinity())
	assert.False(t, p1.Equal(&p2))

	s1, err := k1.ECDH(&p2)
	require.NoError(t, err)
	s2, err := k2.ECDH(&p1)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)

	// deterministic for a fixed reader
	seed := bytes.Repeat([]byte{0x5a}, 64)
	k3, err := GenerateKey(bytes.NewReader(seed))
	require.NoError(t, err)
	want, err := NewScalarFromWideBytes(seed)
	require.NoError(t, err)
	k := k3.Scalar()
	assert.True(t, k.Equal(&want))

	_, err = GenerateKey(bytes.NewReader(make([]byte, 10)))
	assert.Error(t, err)

	// a zero seed is skipped
	seed = append(make([]byte, 64), seed...)
	k4, err := GenerateKey(bytes.NewReader(seed))
	require.NoError(t, err)
	k = k4.Scalar()
	assert.True(t, k.Equal(&want))
}

func TestDerivePrivateKey(t *testing.T) {
	k1, err := DerivePrivateKey([]byte("secret"))
	require.NoError(t, err)
	k2, err := DerivePrivateKey([]byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, k1.Bytes(), k2.Bytes())

	want := DeriveScalar(tagPrivateKey, []byte("secret"))
	k := k1.Scalar()
	assert.True(t, k.Equal(&want))

	k3, err := DerivePrivateKey([]byte("other"))
	require.NoError(t, err)
	assert.NotEqual(t, k1.Bytes(), k3.Bytes())
}

func TestPrivateKeyZero(t *testing.T) {
	key, err := DerivePrivateKey([]byte("wipe"))
	require.NoError(t, err)
	key.Zero()
	k := key.Scalar()
	assert.True(t, k.IsZero())
	pub := key.PublicKey()
	assert.Equal(t, Point{}, pub)
}
