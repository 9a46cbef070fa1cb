// Package money provides exact-precision decimal arithmetic for monetary
// values. Revenue is never represented as binary floating point; totals are
// computed with apd and rendered as plain decimal strings at the boundary.
package money

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// decCtx is the shared arithmetic context. 34 digits matches IEEE decimal128
// and is far beyond any retail revenue total.
var decCtx = apd.BaseContext.WithPrecision(34)

// centsExponent quantizes quotients to two fractional digits.
const centsExponent = -2

// Decimal is an immutable exact-precision decimal amount.
type Decimal struct {
	value apd.Decimal
}

// Parse converts a string into a Decimal. Surrounding whitespace is accepted;
// anything that is not a finite decimal number is an error.
func Parse(s string) (Decimal, error) {
	var d apd.Decimal
	if _, _, err := d.SetString(strings.TrimSpace(s)); err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("non-finite decimal %q", s)
	}
	return Decimal{value: d}, nil
}

// FromInt64 builds a Decimal from an integer amount.
func FromInt64(i int64) Decimal {
	var d apd.Decimal
	d.SetInt64(i)
	return Decimal{value: d}
}

// Zero returns the zero amount.
func Zero() Decimal {
	return Decimal{}
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// IsNegative reports whether d is strictly below zero.
func (d Decimal) IsNegative() bool {
	return d.value.Negative && !d.value.IsZero()
}

// Cmp returns -1, 0, or 1 comparing d to other.
func (d Decimal) Cmp(other Decimal) int {
	return d.value.Cmp(&other.value)
}

// Add returns the exact sum of d and other.
func (d Decimal) Add(other Decimal) Decimal {
	var result apd.Decimal
	_, _ = decCtx.Add(&result, &d.value, &other.value)
	return Decimal{value: result}
}

// DivInt returns d divided by n, quantized to cents and then reduced so that
// an even quotient renders without a trailing ".00" (100/2 -> "50",
// 100/3 -> "33.33"). Division by zero yields zero; callers treat an empty
// group as zero average.
func (d Decimal) DivInt(n int64) Decimal {
	if n == 0 {
		return Decimal{}
	}
	var divisor, quotient, result apd.Decimal
	divisor.SetInt64(n)
	_, _ = decCtx.Quo(&quotient, &d.value, &divisor)
	_, _ = decCtx.Quantize(&result, &quotient, centsExponent)
	result.Reduce(&result)
	return Decimal{value: result}
}

// String renders the amount as a plain decimal string. Sums keep the scale of
// their inputs, so "10.10" + "10.10" renders as "20.20", never
// "20.199999999999996".
func (d Decimal) String() string {
	s := d.value.Text('f')
	if s == "-0" {
		s = "0"
	}
	return s
}
