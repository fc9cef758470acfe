package domain

import (
	"strconv"
	"strings"

	"baseconv/pkg/serrors"
)

// Radix is one of the four numeral bases supported by the converter.
// Its underlying value is the base itself.
type Radix int

const (
	// Binary is base 2.
	Binary Radix = 2
	// Octal is base 8.
	Octal Radix = 8
	// Decimal is base 10.
	Decimal Radix = 10
	// Hexadecimal is base 16.
	Hexadecimal Radix = 16
)

// Radixes lists every supported radix in ascending order.
func Radixes() []Radix {
	return []Radix{Binary, Octal, Decimal, Hexadecimal}
}

// Valid reports whether r is one of the supported radices.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	default:
		return false
	}
}

// Base returns the numeric base of r.
func (r Radix) Base() int { return int(r) }

// String returns the long lower-case name, e.g. "hexadecimal".
func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "radix(" + strconv.Itoa(int(r)) + ")"
	}
}

// Short returns the abbreviated label shown next to results, e.g. "Hex".
func (r Radix) Short() string {
	switch r {
	case Binary:
		return "Bin"
	case Octal:
		return "Oct"
	case Decimal:
		return "Dec"
	case Hexadecimal:
		return "Hex"
	default:
		return strconv.Itoa(int(r))
	}
}

// ParseRadix resolves a radix from its long name, short name or numeric base,
// case-insensitively. Unknown names yield an serrors.ErrBadRequest error.
func ParseRadix(name string) (Radix, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, r := range Radixes() {
		if n == r.String() || n == strings.ToLower(r.Short()) || n == strconv.Itoa(r.Base()) {
			return r, nil
		}
	}

	return 0, serrors.With(serrors.ErrBadRequest, "unknown radix %q", name)
}
