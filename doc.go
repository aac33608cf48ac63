/*
Package pilosa implements immutable arbitrary-precision signed decimal
numbers. It is the numeric primitive of a small interpreted language, so it
favors exact, predictable schoolbook arithmetic over asymptotic speed.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Magnitude: the decimal digits of the number without the decimal point,
    stored least significant first. The magnitude is unbounded.
  - Scale: a non-negative integer indicating how many of those digits sit to
    the right of the decimal point. The scale is unbounded too.

The numerical value of a decimal is calculated as:

  - -Magnitude / 10^Scale, if Sign is true.
  - Magnitude / 10^Scale, if Sign is false.

Every decimal is canonical: the magnitude carries no most-significant zero
digits, the scale is minimal (1.250 is stored as 1.25 with scale 2), and
zero is always non-negative with scale 0. Special values such as NaN,
Infinity, or negative zeros are not representable.

# Operations

Addition, subtraction, multiplication, comparison and Euclidean division are
exact at any magnitude. [Decimal.Quo] is exact when the divisor is a power of
ten; otherwise the quotient is truncated at [DivPrecision] fractional digits
and is never rounded. [Decimal.Pow] uses exponentiation by squaring and
inherits the truncation of Quo for negative exponents.

All arithmetic is schoolbook: multiplication is quadratic and division is
Knuth's Algorithm D. Sub-quadratic algorithms are out of scope.

# Errors

All methods are pure and panic-free for any input that passed validation.
Errors are returned as values and belong to one of three classes:
[ErrFormat] for malformed text, [ErrValidation] for out-of-range digits or
operands, and [ErrDivisionByZero] for zero divisors. A panic coming out of
this package indicates a defect in the arithmetic kernel itself, never a
caller mistake.
*/
package pilosa
