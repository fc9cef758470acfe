// Package converter validates digit strings against a radix alphabet, parses
// them and renders the value in another radix. Values are held as big
// integers, so input of any length converts exactly and there is no overflow
// outcome.
package converter

import (
	"math/big"
	"strings"

	"baseconv/pkg/domain"
)

// Convert converts input from one radix to another.
//
// Empty input yields an Empty outcome and equal radices yield SameBase, in
// that order and before any validation. Otherwise the input, with surrounding
// whitespace trimmed, must be an optional single leading '-' followed by one
// or more digits of from; anything else is Invalid. Unsupported radices are
// Invalid as well.
func Convert(input string, from, to domain.Radix) domain.Outcome {
	if input == "" {
		return domain.Empty()
	}
	if from == to {
		return domain.SameBase()
	}
	if !to.Valid() {
		return domain.Invalid()
	}

	v, ok := Parse(input, from)
	if !ok {
		return domain.Invalid()
	}

	return domain.Success(Format(v, to))
}

// Parse reads input as an integer literal of radix. The whole trimmed string
// must consist of radix digits after an optional '-'; prefixes such as "0x",
// '+' signs and digit separators are rejected.
func Parse(input string, radix domain.Radix) (*big.Int, bool) {
	if !radix.Valid() {
		return nil, false
	}

	s := strings.TrimSpace(input)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return nil, false
	}

	for i := 0; i < len(s); i++ {
		v, ok := digitValue(s[i])
		if !ok || v >= radix.Base() {
			return nil, false
		}
	}

	// s is now known to be plain digits, which SetString accepts in full.
	n, ok := new(big.Int).SetString(s, radix.Base())
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}

	return n, true
}

// Format renders v in radix without leading zeros. Hexadecimal letters are
// upper-case and negative values carry a single leading '-'.
func Format(v *big.Int, radix domain.Radix) string {
	s := v.Text(radix.Base())
	if radix == domain.Hexadecimal {
		return strings.ToUpper(s)
	}

	return s
}
