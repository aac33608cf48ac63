package pilosa

import (
	"fmt"
	"math"
	"strconv"
)

// Parse converts a string to a decimal.
// The input consists of an optional leading '+' or '-', decimal digits, and
// at most one '.'. Embedded spaces are ignored anywhere in the input.
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] ( digits | digits '.' digits | '.' digits | digits '.' )
//
// Parse returns an error if the input contains no digits, more than one '.',
// a sign after the first digit, or any other character.
// The result is always canonical, so Parse("-0") is plain zero and
// Parse("1.250") has scale 2.
func Parse(num string) (Decimal, error) {
	var (
		neg      bool
		hassign  bool
		hasdig   bool
		haspoint bool
		scale    int
		digits   []byte
	)

	for pos := 0; pos < len(num); pos++ {
		switch c := num[pos]; {
		case c == ' ':
			// skip
		case c == '+' || c == '-':
			if hassign || hasdig || haspoint {
				return Decimal{}, ErrFormat.New("unexpected sign %q at position %d", c, pos)
			}
			neg = c == '-'
			hassign = true
		case c == '.':
			if haspoint {
				return Decimal{}, ErrFormat.New("second decimal point at position %d", pos)
			}
			haspoint = true
		case '0' <= c && c <= '9':
			hasdig = true
			digits = append(digits, c-'0')
			if haspoint {
				scale++
			}
		default:
			return Decimal{}, ErrFormat.New("invalid character %q at position %d", c, pos)
		}
	}
	if !hasdig {
		return Decimal{}, ErrFormat.New("no digits in %q", num)
	}

	// The digits were collected most significant first.
	m := make(mag, len(digits))
	for i, d := range digits {
		m[len(digits)-1-i] = d
	}
	return newDecimal(neg, m, scale), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(num string) Decimal {
	d, err := Parse(num)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", num, err))
	}
	return d
}

// NewFromInt64 converts an int64 to an exact decimal.
func NewFromInt64(i int64) Decimal {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	var m mag
	for ; u > 0; u /= 10 {
		m = append(m, byte(u%10))
	}
	return newDecimal(neg, m, 0)
}

// NewFromInt32 converts an int32 to an exact decimal.
func NewFromInt32(i int32) Decimal {
	return NewFromInt64(int64(i))
}

// NewFromFloat64 converts a float64 to a decimal through the shortest text
// form that round-trips the float.
// NewFromFloat64 returns an error if f is NaN or infinite.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ErrFormat.New("cannot convert %v to a decimal", f)
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// String implements the [fmt.Stringer] interface and returns the canonical
// text form of the decimal: a '-' if and only if the decimal is negative, no
// decimal point when the scale is zero, and a leading "0." when |d| < 1
// (never ".005").
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	if d.mag.isZero() {
		return "0"
	}

	buf := make([]byte, 0, len(d.mag)+3)
	if d.neg {
		buf = append(buf, '-')
	}

	// Integer part
	if len(d.mag) > d.scale {
		for i := len(d.mag) - 1; i >= d.scale; i-- {
			buf = append(buf, d.mag[i]+'0')
		}
	} else {
		buf = append(buf, '0')
	}

	// Fractional part
	if d.scale > 0 {
		buf = append(buf, '.')
		for i := d.scale - 1; i >= 0; i-- {
			if i < len(d.mag) {
				buf = append(buf, d.mag[i]+'0')
			} else {
				buf = append(buf, '0')
			}
		}
	}
	return string(buf)
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v: -123.456
//	%q:    "-123.456"
//
// The '+' flag forces a sign, the '-' flag pads on the right, the '0' flag
// pads with zeros after the sign, and a width sets the minimum total length.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		// supported
	default:
		fmt.Fprintf(state, "%%!%c(pilosa.Decimal=%s)", verb, d.String())
		return
	}

	num := d.String()
	sign := ""
	if d.neg {
		sign, num = num[:1], num[1:]
	} else if state.Flag('+') {
		sign = "+"
	}

	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	width := len(sign) + len(num) + 2*len(quote)
	pad := 0
	if w, ok := state.Width(); ok && w > width {
		pad = w - width
	}

	switch {
	case pad > 0 && state.Flag('-'):
		fmt.Fprintf(state, "%s%s%s%s%*s", quote, sign, num, quote, pad, "")
	case pad > 0 && state.Flag('0'):
		fmt.Fprintf(state, "%s%s%0*d%s%s", quote, sign, pad, 0, num, quote)
	case pad > 0:
		fmt.Fprintf(state, "%*s%s%s%s%s", pad, "", quote, sign, num, quote)
	default:
		fmt.Fprintf(state, "%s%s%s%s", quote, sign, num, quote)
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
