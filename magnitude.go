package pilosa

// mag is an unsigned magnitude stored as a little-endian slice of decimal
// digits, so mag{2, 3, 3, 1} is 1332.
//
// A magnitude is canonical if it contains no most-significant zero digits.
// The canonical representation of zero is the empty (or nil) slice.
// Denormalized values may occur inside arithmetic routines but every
// exported-facing result is normalized before it leaves the kernel.
type mag []byte

// newMag validates and canonicalizes a caller-supplied digit slice.
// The input is copied, never aliased.
func newMag(digits []byte) (mag, error) {
	for i, d := range digits {
		if d > 9 {
			return nil, ErrValidation.New("digit %d at position %d is out of range [0, 9]", d, i)
		}
	}
	z := make(mag, len(digits))
	copy(z, digits)
	return z.norm(), nil
}

// norm truncates most-significant zero digits.
// The result shares storage with x.
func (x mag) norm() mag {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x mag) clone() mag {
	if len(x) == 0 {
		return nil
	}
	z := make(mag, len(x))
	copy(z, x)
	return z
}

func (x mag) isZero() bool {
	return len(x) == 0
}

func (x mag) isOne() bool {
	return len(x) == 1 && x[0] == 1
}

// cmp compares two canonical magnitudes and returns -1, 0 or +1.
// A longer canonical magnitude is always the greater one; equal lengths are
// decided digit by digit from the most significant end downward.
func (x mag) cmp(y mag) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x mag) add(y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(mag, len(x)+1)
	var c byte
	for i := range x {
		t := x[i] + c
		if i < len(y) {
			t += y[i]
		}
		z[i] = t % 10
		c = t / 10
	}
	z[len(x)] = c
	return z.norm()
}

// sub calculates x - y.
// The caller must ensure x >= y; a leftover borrow means the kernel itself is
// broken, so sub panics rather than returning an error.
func (x mag) sub(y mag) mag {
	z := make(mag, len(x))
	var b byte
	for i := range x {
		t := int(x[i]) - int(b)
		if i < len(y) {
			t -= int(y[i])
		}
		if t < 0 {
			t += 10
			b = 1
		} else {
			b = 0
		}
		z[i] = byte(t)
	}
	if b != 0 || len(y) > len(x) {
		panic("pilosa: magnitude subtraction underflow")
	}
	return z.norm()
}

// mul calculates x * y using the schoolbook algorithm, one carry-propagated
// partial product per digit of the shorter operand.
func (x mag) mul(y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	switch {
	case y.isZero():
		return nil
	case y.isOne():
		return x.clone()
	case x.isOne():
		return y.clone()
	}
	z := make(mag, len(x)+len(y))
	for j, d := range y {
		if d == 0 {
			continue
		}
		var c byte
		for i, e := range x {
			t := e*d + z[i+j] + c
			z[i+j] = t % 10
			c = t / 10
		}
		z[j+len(x)] = c
	}
	return z.norm()
}

// mulDigit calculates x * d for a single digit d.
func (x mag) mulDigit(d byte) mag {
	if d == 0 || x.isZero() {
		return nil
	}
	if d == 1 {
		return x.clone()
	}
	z := make(mag, len(x)+1)
	var c byte
	for i, e := range x {
		t := e*d + c
		z[i] = t % 10
		c = t / 10
	}
	z[len(x)] = c
	return z.norm()
}

// lsh calculates x * 10^shift by inserting zero digits at the least
// significant end.
func (x mag) lsh(shift int) mag {
	if x.isZero() {
		return nil
	}
	if shift <= 0 {
		return x.clone()
	}
	z := make(mag, len(x)+shift)
	copy(z[shift:], x)
	return z
}

// pow10 returns k such that x == 10^k, or false if x is not an exact power
// of ten.
func (x mag) pow10() (int, bool) {
	if len(x) == 0 || x[len(x)-1] != 1 {
		return 0, false
	}
	for _, d := range x[:len(x)-1] {
		if d != 0 {
			return 0, false
		}
	}
	return len(x) - 1, true
}
