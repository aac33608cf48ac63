package pilosa

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The kernel property suites below are the safety net for the two most
// bug-prone regions of the kernel: magnitude comparison and long division.
// They check the implementation against integer arithmetic on small operands
// and against algebraic laws on large random ones.

func randMag(r *rand.Rand, maxLen int) mag {
	m := make(mag, r.Intn(maxLen+1))
	for i := range m {
		m[i] = byte(r.Intn(10))
	}
	return m.norm()
}

func cmpInt(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// TestMagCmp_Matrix pins down the comparison order (lengths first, then
// digits from the most significant end) by checking every pair of
// magnitudes of zero to four digits against integer comparison.
func TestMagCmp_Matrix(t *testing.T) {
	const limit = 1111 // covers all canonical magnitudes of length 0 to 4
	mags := make([]mag, limit)
	for a := range mags {
		mags[a] = magUint(uint64(a))
	}
	for a := uint64(0); a < limit; a++ {
		u := mags[a]
		for b := uint64(0); b < limit; b++ {
			v := mags[b]
			if got, want := u.cmp(v), cmpInt(a, b); got != want {
				require.Failf(t, "comparison mismatch",
					"cmp(%d, %d) = %d, want %d\nu: %sv: %s",
					a, b, got, want, spew.Sdump(u), spew.Sdump(v))
			}
		}
	}
}

func TestMag_AlgebraicLaws(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		u := randMag(r, 40)
		v := randMag(r, 40)
		w := randMag(r, 40)

		// commutativity
		assert.True(t, bytes.Equal(u.add(v), v.add(u)), "add(u, v) != add(v, u)\nu: %sv: %s", spew.Sdump(u), spew.Sdump(v))
		assert.True(t, bytes.Equal(u.mul(v), v.mul(u)), "mul(u, v) != mul(v, u)\nu: %sv: %s", spew.Sdump(u), spew.Sdump(v))

		// associativity
		assert.True(t, bytes.Equal(u.add(v).add(w), u.add(v.add(w))), "addition is not associative\nu: %sv: %sw: %s", spew.Sdump(u), spew.Sdump(v), spew.Sdump(w))
		assert.True(t, bytes.Equal(u.mul(v).mul(w), u.mul(v.mul(w))), "multiplication is not associative\nu: %sv: %sw: %s", spew.Sdump(u), spew.Sdump(v), spew.Sdump(w))

		// identity and inverse
		assert.True(t, bytes.Equal(u.add(nil), u), "add(u, 0) != u")
		assert.True(t, bytes.Equal(u.mul(mag{1}), u), "mul(u, 1) != u")
		assert.True(t, bytes.Equal(u.add(v).sub(v), u), "sub(add(u, v), v) != u\nu: %sv: %s", spew.Sdump(u), spew.Sdump(v))

		// distributivity
		assert.True(t, bytes.Equal(u.mul(v.add(w)), u.mul(v).add(u.mul(w))), "multiplication does not distribute\nu: %sv: %sw: %s", spew.Sdump(u), spew.Sdump(v), spew.Sdump(w))
	}
}

// TestMag_Div_SmallExhaustive cross-checks short and long division against
// native integer division for every small dividend/divisor pair.
func TestMag_Div_SmallExhaustive(t *testing.T) {
	for x := uint64(0); x <= 3000; x++ {
		u := magUint(x)
		for y := uint64(1); y <= 600; y++ {
			q, r := u.div(magUint(y))
			if !bytes.Equal(q, magUint(x/y)) || !bytes.Equal(r, magUint(x%y)) {
				require.Failf(t, "division mismatch",
					"div(%d, %d) = (%v, %v), want (%d, %d)",
					x, y, q, r, x/y, x%y)
			}
		}
	}
}

// subLoopDiv is the quotient-by-repeated-subtraction oracle. It is far too
// slow for production but trivially correct, which makes it a good reference
// for long division on small operands.
func subLoopDiv(x, y mag) (q, r mag) {
	r = x.clone()
	for r.cmp(y) >= 0 {
		r = r.sub(y)
		q = q.add(mag{1})
	}
	return q, r
}

func TestMag_Div_SubtractionOracle(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		u := randMag(r, 5)
		v := randMag(r, 3)
		if v.isZero() {
			v = mag{byte(1 + r.Intn(9)), byte(1 + r.Intn(9))}
		}
		gotQ, gotR := u.div(v)
		wantQ, wantR := subLoopDiv(u, v)
		assert.True(t, bytes.Equal(gotQ, wantQ) && bytes.Equal(gotR, wantR),
			"div disagrees with the subtraction oracle\nu: %sv: %sgot: (%s, %s)\nwant: (%s, %s)",
			spew.Sdump(u), spew.Sdump(v), spew.Sdump(gotQ), spew.Sdump(gotR), spew.Sdump(wantQ), spew.Sdump(wantR))
	}
}

// TestMag_Div_Reconstruction exercises long division on operands far beyond
// native integers, including the add-back branch, and checks q*v + r == u
// with 0 <= r < v.
func TestMag_Div_Reconstruction(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		u := randMag(r, 60)
		v := randMag(r, 12)
		if v.isZero() {
			continue
		}
		q, rem := u.div(v)
		require.True(t, rem.cmp(v) < 0, "remainder not smaller than divisor\nu: %sv: %srem: %s", spew.Sdump(u), spew.Sdump(v), spew.Sdump(rem))
		back := q.mul(v).add(rem)
		require.True(t, bytes.Equal(back, u), "q*v + r != u\nu: %sv: %sq: %srem: %s", spew.Sdump(u), spew.Sdump(v), spew.Sdump(q), spew.Sdump(rem))
	}
}
