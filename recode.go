package gls254

// Window widths supported by the recoder and the table builder
const (
	minWindow = 2
	maxWindow = 5

	// digits needed for a 128-bit half scalar at the smallest width
	maxDigits = (128+minWindow-1)/minWindow + 1
)

// digitSequence is the regular signed-digit form of a short scalar:
// every digit is odd, in [-(2^w - 1), 2^w - 1], never zero, and
// k = sum d[j] * 2^(w*j).
type digitSequence struct {
	d [maxDigits]int8
	n int
}

// numDigits returns ceil(128/w) + 1, the digit count for width w
func numDigits(w uint) int {
	return (128+int(w)-1)/int(w) + 1
}

// recode sets r to the width-w regular recoding of the odd value k.
//
// Each step takes d = (k mod 2^(w+1)) - 2^w, which is odd because k is,
// then k = (k - d) / 2^w, which is odd again. After numDigits(w) - 1 steps
// what remains is +1 or -1 and becomes the top digit. The trip count only
// depends on w.
func (r *digitSequence) recode(k *splitScalar, w uint) {
	m := k.v
	n := numDigits(w)
	mod := uint64(1)<<(w+1) - 1
	half := int64(1) << w

	for j := 0; j < n-1; j++ {
		d := int64(m[0]&mod) - half
		ext := uint64(d >> 63)
		m = sub192(m, [3]uint64{uint64(d), ext, ext})

		// arithmetic shift right by w
		m[0] = (m[0] >> w) | (m[1] << (64 - w))
		m[1] = (m[1] >> w) | (m[2] << (64 - w))
		m[2] = uint64(int64(m[2]) >> w)

		r.d[j] = int8(d)
	}
	r.d[n-1] = int8(int64(m[0]))
	r.n = n
}

// clear wipes r
func (r *digitSequence) clear() {
	for i := range r.d {
		r.d[i] = 0
	}
}
