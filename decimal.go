package pilosa

// Decimal is an immutable arbitrary-precision signed decimal number.
// The zero value is the numeric value 0 and is ready to use.
//
// A decimal is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Magnitude: the digits of the decimal without the decimal point,
//     least significant first.
//   - Scale: a non-negative integer indicating the position of the decimal
//     point within the magnitude.
//
// The numeric value is (-1)^sign * magnitude * 10^(-scale).
// Both the magnitude and the scale are unbounded.
//
// Every decimal is kept in canonical form: the magnitude has no
// most-significant zero digits, the scale is minimal (no trailing zero digit
// in the fractional part), and zero is never negative.
//
// All operations are pure: they never mutate their operands and always
// allocate a fresh result, which makes decimals safe for concurrent use by
// multiple goroutines.
type Decimal struct {
	neg   bool // indicates whether the decimal is negative
	scale int  // the position of the floating decimal point
	mag   mag  // the magnitude of the decimal
}

// DivPrecision is the number of fractional digits retained by [Decimal.Quo]
// when the exact quotient does not terminate. The quotient is truncated,
// never rounded, so the worst-case error is 10^(-DivPrecision).
const DivPrecision = 15

var (
	// Zero is the decimal 0.
	Zero = Decimal{}
	// One is the decimal 1.
	One = Decimal{mag: mag{1}}
)

// newDecimal canonicalizes trusted components: the magnitude is normalized,
// trailing fractional zeros are absorbed into the scale, and zero sheds both
// its sign and its scale. The magnitude must be freshly allocated by the
// caller; it may end up shared with the result.
func newDecimal(neg bool, m mag, scale int) Decimal {
	m = m.norm()
	for scale > 0 && len(m) > 0 && m[0] == 0 {
		m = m[1:]
		scale--
	}
	if len(m) == 0 {
		return Decimal{}
	}
	return Decimal{neg: neg, scale: scale, mag: m}
}

// New returns a decimal assembled from raw components: a sign, a digit
// slice ordered least significant first, and a scale counting digits to the
// right of the decimal point.
//
// New returns an error if any digit is outside [0, 9] or if the scale is
// negative. The result is canonical: New(true, []byte{0}, 2) is plain zero.
func New(neg bool, digits []byte, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrValidation.New("scale %d is negative", scale)
	}
	m, err := newMag(digits)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimal(neg, m, scale), nil
}

// MustNew is like [New] but panics if the components are invalid.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(neg bool, digits []byte, scale int) Decimal {
	d, err := New(neg, digits, scale)
	if err != nil {
		panic("MustNew() failed: " + err.Error())
	}
	return d
}

// alignScales pads the operand with the smaller scale with zero digits at
// its least significant end until both scales match. Value preserving; the
// operands themselves are never modified.
func alignScales(d, e Decimal) (Decimal, Decimal) {
	switch {
	case d.scale < e.scale:
		d = Decimal{neg: d.neg, scale: e.scale, mag: d.mag.lsh(e.scale - d.scale)}
	case e.scale < d.scale:
		e = Decimal{neg: e.neg, scale: d.scale, mag: e.mag.lsh(d.scale - e.scale)}
	}
	return d, e
}

// Prec returns the number of digits in the magnitude.
// Prec assumes that 0 has no digits.
func (d Decimal) Prec() int {
	return len(d.mag)
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.mag.isZero():
		return 0
	}
	return 1
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.mag.isZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.mag.isZero()
}

// IsOne returns true if d == -1 or d == 1.
func (d Decimal) IsOne() bool {
	return d.scale == 0 && d.mag.isOne()
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.scale == 0
}

// WithinOne returns true if -1 < d < 1.
func (d Decimal) WithinOne() bool {
	return len(d.mag) <= d.scale
}

// Neg returns d with the opposite sign.
// Negating zero is a no-op, so zero stays non-negative.
func (d Decimal) Neg() Decimal {
	if d.mag.isZero() {
		return d
	}
	return Decimal{neg: !d.neg, scale: d.scale, mag: d.mag}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{neg: false, scale: d.scale, mag: d.mag}
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.neg != e.neg:
		return d.Neg()
	}
	return d
}

// Add calculates d + e.
//
// When the signs match, the aligned magnitudes are added under the common
// sign. When they differ, the sum reduces to a subtraction of the smaller
// aligned magnitude from the larger one, under the sign of the larger.
func (d Decimal) Add(e Decimal) Decimal {
	a, b := alignScales(d, e)
	if a.neg == b.neg {
		return newDecimal(a.neg, a.mag.add(b.mag), a.scale)
	}
	switch a.mag.cmp(b.mag) {
	case 1:
		return newDecimal(a.neg, a.mag.sub(b.mag), a.scale)
	case -1:
		return newDecimal(b.neg, b.mag.sub(a.mag), a.scale)
	}
	return Zero
}

// Sub calculates d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul calculates d * e.
// The sign is the exclusive or of the operand signs and the scale is the sum
// of the operand scales.
func (d Decimal) Mul(e Decimal) Decimal {
	return newDecimal(d.neg != e.neg, d.mag.mul(e.mag), d.scale+e.scale)
}

// Quo calculates d / e.
//
// When |e| is an exact power of ten the result is exact: the quotient is d
// with its decimal point shifted. Otherwise the quotient is truncated at
// [DivPrecision] fractional digits (it is never rounded), unless the scale
// of d already carries more resolution than that.
//
// Quo returns an error if e is zero.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("%v / %v", d, e)
	}
	neg := d.neg != e.neg

	// Dividing by 10^k only moves the decimal point.
	if k, ok := e.mag.pow10(); ok {
		s := d.scale + k - e.scale // e = 10^(k - e.scale)
		if s < 0 {
			return newDecimal(neg, d.mag.lsh(-s), 0), nil
		}
		return newDecimal(neg, d.mag.clone(), s), nil
	}

	// Pad the dividend until the quotient carries DivPrecision fractional
	// digits, then divide the magnitudes and drop the remainder.
	pad := DivPrecision + e.scale - d.scale
	if pad < 0 {
		pad = 0
	}
	q, _ := d.mag.lsh(pad).div(e.mag)
	return newDecimal(neg, q, d.scale+pad-e.scale), nil
}

// QuoRem performs Euclidean division: it returns the integral quotient q and
// the remainder r such that d = q*e + r and 0 <= r < e.
//
// QuoRem returns an error if e is zero, or if either operand is negative:
// Euclidean division is defined here for d >= 0 and e > 0 only.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, ErrDivisionByZero.New("%v / %v", d, e)
	}
	if d.IsNeg() || e.IsNeg() {
		return Decimal{}, Decimal{}, ErrValidation.New("euclidean division requires %v >= 0 and %v > 0", d, e)
	}
	a, b := alignScales(d, e)
	qm, rm := a.mag.div(b.mag)
	return newDecimal(false, qm, 0), newDecimal(false, rm, a.scale), nil
}

// Pow calculates d raised to the integer power exp using exponentiation by
// squaring.
//
// Negative exponents divide by d once per odd halving step, so the result is
// subject to the same [DivPrecision] truncation as [Decimal.Quo].
// Pow returns an error if zero is raised to a negative power.
func (d Decimal) Pow(exp int) (Decimal, error) {
	if exp == 0 {
		return One, nil
	}
	f, err := d.Pow(exp / 2)
	if err != nil {
		return Decimal{}, err
	}
	f = f.Mul(f)
	switch {
	case exp%2 == 0:
		return f, nil
	case exp > 0:
		return f.Mul(d), nil
	}
	return f.Quo(d)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.neg && !e.neg:
		return -1
	case !d.neg && e.neg:
		return 1
	}
	a, b := alignScales(d, e)
	c := a.mag.cmp(b.mag)
	if d.neg {
		return -c
	}
	return c
}

// Equal returns true if d and e have the same numeric value.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Max returns the larger decimal.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
