package pilosa

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustQuoRem is like [Decimal.QuoRem] but panics if computing error.
func (d Decimal) MustQuoRem(e Decimal) (Decimal, Decimal) {
	q, r, err := d.QuoRem(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", d, err))
	}
	return q, r
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(exp int) Decimal {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", d, err))
	}
	return f
}
