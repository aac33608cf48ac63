package pilosa

import "github.com/zeebo/errs"

// Error classes returned by the public API.
// Class membership is the contract: test with ErrFormat.Has(err) rather than
// comparing messages.
var (
	// ErrFormat reports malformed input text passed to [Parse] or
	// [NewFromFloat64].
	ErrFormat = errs.Class("invalid number format")

	// ErrValidation reports invalid raw components passed to [New], or
	// operands outside the domain of [Decimal.QuoRem].
	ErrValidation = errs.Class("invalid operand")

	// ErrDivisionByZero reports a zero divisor passed to [Decimal.Quo],
	// [Decimal.QuoRem] or, through a negative exponent, [Decimal.Pow].
	ErrDivisionByZero = errs.Class("division by zero")
)
