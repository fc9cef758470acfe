package converter

import "baseconv/pkg/domain"

type converter struct{}

// Ensure converter implements Converter.
var _ Converter = converter{}

// New returns the default Converter backed by Convert and ValidDigits.
func New() Converter {
	return converter{}
}

func (converter) Convert(req domain.Request) domain.Outcome {
	return Convert(req.Input, req.From, req.To)
}

func (converter) ValidDigits(radix domain.Radix) []rune {
	return ValidDigits(radix)
}
