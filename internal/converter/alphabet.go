package converter

import "baseconv/pkg/domain"

// digitSymbols holds the output symbol of every digit value up to base 16.
// A radix's alphabet is the prefix of length Base().
const digitSymbols = "0123456789ABCDEF"

// ValidDigits returns the ordered digit alphabet of radix: 0-1 for binary,
// 0-7 for octal, 0-9 for decimal and 0-9 then A-F for hexadecimal. A new
// slice is returned on every call. Unsupported radices have no digits.
func ValidDigits(radix domain.Radix) []rune {
	if !radix.Valid() {
		return nil
	}

	return []rune(digitSymbols[:radix.Base()])
}

// digitValue returns the numeric value of an input digit character. Letters
// are accepted in either case.
func digitValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// IsDigit reports whether c is a digit of radix. Lower-case hex letters count.
func IsDigit(c rune, radix domain.Radix) bool {
	if !radix.Valid() || c > 0x7f {
		return false
	}
	v, ok := digitValue(byte(c))

	return ok && v < radix.Base()
}
