package bench

import (
	"bytes"
	"testing"

	"gls254.mleku.dev"
	"gls254.mleku.dev/kex"
)

// Benchmarks comparing key exchange on GLS254 (every variant) with
// secp256k1 (btcec) and X25519 (circl).

var (
	benchSeckey1 = bytes.Repeat([]byte{0x01}, 32)
	benchSeckey2 = bytes.Repeat([]byte{0x02}, 32)
)

// newPair returns two initialised parties from the same constructor
func newPair(b *testing.B, mk func() kex.I) (kex.I, kex.I) {
	b.Helper()
	a, c := mk(), mk()
	if err := a.InitSec(benchSeckey1); err != nil {
		b.Fatalf("failed to init first party: %v", err)
	}
	if err := c.InitSec(benchSeckey2); err != nil {
		b.Fatalf("failed to init second party: %v", err)
	}
	return a, c
}

func benchmarkPubkeyDerivation(b *testing.B, mk func() kex.I) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := mk()
		if err := s.InitSec(benchSeckey1); err != nil {
			b.Fatalf("InitSec failed: %v", err)
		}
		_ = s.Pub()
	}
}

func benchmarkECDH(b *testing.B, mk func() kex.I) {
	a, c := newPair(b, mk)
	pub := c.Pub()

	// both sides must agree before timing anything
	s1, err := a.ECDH(pub)
	if err != nil {
		b.Fatalf("ECDH failed: %v", err)
	}
	s2, err := c.ECDH(a.Pub())
	if err != nil {
		b.Fatalf("ECDH failed: %v", err)
	}
	if !bytes.Equal(s1, s2) {
		b.Fatalf("shared secrets differ: %x != %x", s1, s2)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ECDH(pub); err != nil {
			b.Fatalf("ECDH failed: %v", err)
		}
	}
}

func gls254Party(v gls254.Variant) func() kex.I {
	return func() kex.I { return kex.NewGLS254(v) }
}

func BenchmarkPubkeyDerivation_GLS254(b *testing.B) {
	benchmarkPubkeyDerivation(b, gls254Party(gls254.DefaultVariant))
}

func BenchmarkPubkeyDerivation_Btcec(b *testing.B) {
	benchmarkPubkeyDerivation(b, func() kex.I { return kex.NewBtcec() })
}

func BenchmarkPubkeyDerivation_X25519(b *testing.B) {
	benchmarkPubkeyDerivation(b, func() kex.I { return kex.NewX25519() })
}

// BenchmarkECDH_GLS254 runs one sub-benchmark per multiplication variant
func BenchmarkECDH_GLS254(b *testing.B) {
	for _, v := range gls254.Variants() {
		b.Run(v.String(), func(b *testing.B) {
			benchmarkECDH(b, gls254Party(v))
		})
	}
}

func BenchmarkECDH_Btcec(b *testing.B) {
	benchmarkECDH(b, func() kex.I { return kex.NewBtcec() })
}

func BenchmarkECDH_X25519(b *testing.B) {
	benchmarkECDH(b, func() kex.I { return kex.NewX25519() })
}
