package pilosa

// divDigit calculates x / d and x mod d for a single nonzero digit d,
// carrying a running remainder from the most significant digit downward.
func (x mag) divDigit(d byte) (q mag, r byte) {
	if d == 0 {
		panic("pilosa: magnitude division by zero digit")
	}
	q = make(mag, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		t := r*10 + x[i]
		q[i] = t / d
		r = t % d
	}
	return q.norm(), r
}

// div calculates x / y and x mod y. The caller must ensure y is nonzero.
func (x mag) div(y mag) (q, r mag) {
	if y.isZero() {
		panic("pilosa: magnitude division by zero")
	}
	if len(y) == 1 {
		q, rd := x.divDigit(y[0])
		if rd == 0 {
			return q, nil
		}
		return q, mag{rd}
	}
	if x.cmp(y) < 0 {
		return nil, x.clone()
	}
	return x.divLong(y)
}

// divLong divides x by a multi-digit divisor y using Knuth's Algorithm D:
// normalize so the divisor's top digit is at least 5, estimate each quotient
// digit from the top two digits of the working remainder, refine the estimate
// with the divisor's second digit, then multiply-subtract with an add-back
// when the estimate still overshoots.
//
// Preconditions: x >= y, len(y) >= 2, both canonical.
func (x mag) divLong(y mag) (q, r mag) {
	n := len(y)
	m := len(x) - n

	// Normalize. d = 10/(top+1) guarantees that y*d keeps its length and
	// that its top digit becomes >= 5, which bounds the estimation error
	// below to at most 2.
	d := byte(10 / (y[n-1] + 1))
	u := make(mag, len(x)+1)
	var c byte
	for i, e := range x {
		t := e*d + c
		u[i] = t % 10
		c = t / 10
	}
	u[len(x)] = c
	v := y.mulDigit(d)
	if len(v) != n || v[n-1] < 5 {
		panic("pilosa: long division normalization failed")
	}

	q = make(mag, m+1)
	for j := m; j >= 0; j-- {
		// Estimate the quotient digit from the top two remainder digits.
		t := int(u[j+n])*10 + int(u[j+n-1])
		qhat := t / int(v[n-1])
		rhat := t % int(v[n-1])
		for qhat >= 10 || qhat*int(v[n-2]) > rhat*10+int(u[j+n-2]) {
			qhat--
			rhat += int(v[n-1])
			if rhat >= 10 {
				break
			}
		}

		// Multiply and subtract qhat*v from the remainder slice.
		borrow := 0
		for i := 0; i < n; i++ {
			t := int(u[j+i]) - borrow - qhat*int(v[i])
			dig := t % 10
			if dig < 0 {
				dig += 10
			}
			u[j+i] = byte(dig)
			borrow = (dig - t) / 10
		}
		t = int(u[j+n]) - borrow

		// The estimate can still be one too large; add the divisor back.
		if t < 0 {
			qhat--
			var carry byte
			for i := 0; i < n; i++ {
				s := u[j+i] + v[i] + carry
				u[j+i] = s % 10
				carry = s / 10
			}
			t += int(carry)
		}
		u[j+n] = byte(t)

		if qhat < 0 || qhat > 9 {
			panic("pilosa: quotient digit out of range")
		}
		q[j] = byte(qhat)
	}

	// The low n digits hold the normalized remainder; undo the
	// normalization. Anything left over means a kernel bug.
	r = u[:n].norm()
	if d > 1 {
		var rd byte
		r, rd = r.divDigit(d)
		if rd != 0 {
			panic("pilosa: nonzero leftover after unnormalization")
		}
	}
	return q.norm(), r
}
