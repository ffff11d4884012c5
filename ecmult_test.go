package gls254

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Independent known answers: k*G and k*(5G)
const (
	katScalarKA = "ffeeddccbbaa998877665544332211001f2e3d4c5b6a798897a6b5c4d3e2f100"
	katKAG      = "9346b75321b45860e7da1eb26b3d9ad8b4330ba16a46d6274939c79ef708e45e"
	katScalarKB = "1032547698badcfef0debc9a7856341200000000000000000000000000000010"
	katKB5G     = "b06dff5f60557c540f1214b1003909d7d717072a9aba65dcc520d6f056ab3b5d"
)

func TestScalarMultKnownAnswers(t *testing.T) {
	ka := mustScalar(t, katScalarKA)
	kb := mustScalar(t, katScalarKB)
	g := Generator()
	p5, err := NewPointFromBytes(mustHex(t, enc5G))
	require.NoError(t, err)

	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			r := ScalarMult(&ka, &g, v)
			assert.Equal(t, katKAG, encodeHex(&r))

			r = ScalarMult(&kb, &p5, v)
			assert.Equal(t, katKB5G, encodeHex(&r))
		})
	}

	r := ScalarBaseMult(&ka)
	assert.Equal(t, katKAG, encodeHex(&r))
}

func TestScalarMultIdentities(t *testing.T) {
	m := smallMultiples(8)
	o := Identity()
	m1 := mustScalar(t, orderM1Hex)
	order := mustScalar(t, orderHex)

	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			for i := 1; i < len(m); i++ {
				p := m[i]

				r := ScalarMult(&ScalarZero, &p, v)
				require.True(t, r.IsInfinity(), "0*P")

				r = ScalarMult(&ScalarOne, &p, v)
				require.True(t, r.Equal(&p), "1*P")

				k := NewScalarFromUint64(2)
				r = ScalarMult(&k, &p, v)
				var d Point
				d.Double(&p)
				require.True(t, r.Equal(&d), "2*P")

				r = ScalarMult(&m1, &p, v)
				var neg Point
				neg.Negate(&p)
				require.True(t, r.Equal(&neg), "(r-1)*P = -P")

				r = ScalarMult(&order, &p, v)
				require.True(t, r.IsInfinity(), "r*P")
			}

			rng := rand.New(rand.NewSource(16))
			k := randomScalar(rng)
			r := ScalarMult(&k, &o, v)
			require.True(t, r.IsInfinity(), "k*O")

			// small scalars against repeated addition
			for i := 0; i < len(m); i++ {
				k := NewScalarFromUint64(uint64(i))
				r := ScalarMult(&k, &m[1], v)
				require.True(t, r.Equal(&m[i]), "%d*G", i)
			}
		})
	}
}

func TestScalarMultLinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	g := Generator()
	for i := 0; i < 8; i++ {
		a, b := randomScalar(rng), randomScalar(rng)
		var sum Scalar
		sum.add(&a, &b)

		for _, v := range Variants() {
			pa := ScalarMult(&a, &g, v)
			pb := ScalarMult(&b, &g, v)
			ps := ScalarMult(&sum, &g, v)
			var add Point
			add.Add(&pa, &pb)
			require.True(t, ps.Equal(&add), "%s: (a+b)G = aG + bG", v)
		}

		// (a*b)G = a(bG)
		var prod Scalar
		prod.mul(&a, &b)
		bg := ScalarBaseMult(&b)
		abg := ScalarMult(&a, &bg, DefaultVariant)
		want := ScalarBaseMult(&prod)
		require.True(t, abg.Equal(&want))
	}
}

func TestScalarMultEndomorphismConsistency(t *testing.T) {
	l := Lambda()
	for _, p := range smallMultiples(5)[1:] {
		want := Endomorphism(&p)
		for _, v := range Variants() {
			r := ScalarMult(&l, &p, v)
			require.True(t, r.Equal(&want), "%s: lambda*P = psi(P)", v)
		}
	}
}

func TestVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	p := smallMultiples(4)[3]
	for i := 0; i < 10; i++ {
		k := randomScalar(rng)
		want := ScalarMult(&k, &p, Variant1DT3)
		for _, v := range Variants()[1:] {
			r := ScalarMult(&k, &p, v)
			require.True(t, r.Equal(&want), "%s disagrees", v)
		}
	}

	g := Generator()
	for _, k := range boundaryScalars(t) {
		k := k
		want := ScalarMult(&k, &g, DefaultVariant)
		r := ScalarBaseMult(&k)
		require.True(t, r.Equal(&want))
	}
}

func TestScalarMultConcurrent(t *testing.T) {
	g := Generator()
	rng := rand.New(rand.NewSource(19))
	scalars := make([]Scalar, 8)
	want := make([]Point, len(scalars))
	for i := range scalars {
		scalars[i] = randomScalar(rng)
		want[i] = ScalarMult(&scalars[i], &g, DefaultVariant)
	}

	var wg sync.WaitGroup
	errs := make(chan int, len(scalars)*2)
	for i := range scalars {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r := ScalarBaseMult(&scalars[i])
			if !r.Equal(&want[i]) {
				errs <- i
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			r := ScalarMult(&scalars[i], &g, Variant2DT3)
			if !r.Equal(&want[i]) {
				errs <- i
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Errorf("concurrent multiplication %d gave a wrong result", i)
	}
}

func TestScalarMultInvalidVariant(t *testing.T) {
	g := Generator()
	assert.Panics(t, func() { ScalarMult(&ScalarOne, &g, Variant(-1)) })
	assert.Panics(t, func() { ScalarMult(&ScalarOne, &g, numVariants) })
}

func TestVariantParameters(t *testing.T) {
	tests := []struct {
		v      Variant
		name   string
		window uint
		tables int
	}{
		{Variant1DT3, "AD-1DT-3", 3, 1},
		{Variant1DT4, "AD-1DT-4", 4, 1},
		{Variant1DT5, "AD-1DT-5", 5, 1},
		{Variant2DT2, "AD-2DT-2", 2, 2},
		{Variant2DT3, "AD-2DT-3", 3, 2},
	}
	require.Len(t, Variants(), len(tests))
	for _, tc := range tests {
		assert.True(t, tc.v.Valid())
		assert.Equal(t, tc.name, tc.v.String())
		assert.Equal(t, tc.window, tc.v.Window())
		assert.Equal(t, tc.tables, tc.v.Tables())
		assert.GreaterOrEqual(t, tc.v.Window(), uint(minWindow))
		assert.LessOrEqual(t, tc.v.Window(), uint(maxWindow))

		v, err := ParseVariant(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.v, v)
	}

	assert.Equal(t, "invalid", Variant(42).String())
	assert.False(t, Variant(42).Valid())
	assert.Equal(t, Variant1DT4, DefaultVariant)
}

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"ad-2dt-3", " AD-2DT-3 ", "2DT-3", "2dt-3"} {
		v, err := ParseVariant(s)
		require.NoError(t, err, s)
		assert.Equal(t, Variant2DT3, v)
	}

	for _, s := range []string{"", "AD-1DT-2", "AD-3DT-3", "fast"} {
		_, err := ParseVariant(s)
		assert.True(t, errors.Is(err, ErrInvalidVariant), s)
	}
}

func BenchmarkScalarMult(b *testing.B) {
	g := Generator()
	k := DeriveScalar("bench", []byte("scalar"))
	for _, v := range Variants() {
		b.Run(v.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ScalarMult(&k, &g, v)
			}
		})
	}
}

func BenchmarkScalarBaseMult(b *testing.B) {
	k := DeriveScalar("bench", []byte("scalar"))
	ScalarBaseMult(&k)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScalarBaseMult(&k)
	}
}
