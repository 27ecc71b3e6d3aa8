package sap

import (
	"math/big"
	"strconv"
)

// isMultipleOf reports whether value is an integer multiple of divisor,
// using exact rational arithmetic rather than a float epsilon comparison —
// floats like 0.1 and 0.3 don't divide evenly in IEEE 754 even when the
// decimal values plainly do. Adapted from the teacher's Rat wrapper around
// math/big.Rat, scoped down to the one operation the multiple_of
// constraint (§4.3) needs.
func isMultipleOf(value, divisor float64) bool {
	if divisor == 0 {
		return false
	}
	// Go through each float's shortest decimal text so 0.1 is exactly 1/10
	// rather than its nearest binary fraction.
	v, okV := new(big.Rat).SetString(strconv.FormatFloat(value, 'g', -1, 64))
	d, okD := new(big.Rat).SetString(strconv.FormatFloat(divisor, 'g', -1, 64))
	if !okV || !okD {
		return false
	}
	quotient := new(big.Rat).Quo(v, d)
	return quotient.IsInt()
}
