package converter

import "baseconv/pkg/domain"

// Converter is the call interface used by the presentation front ends. The
// default implementation returned by New is stateless and safe for concurrent
// use.
//
//go:generate mockgen -package mockconverter -source=interface.go -destination=mock/mockconverter.go *
type Converter interface {
	// Convert evaluates a single request and always returns one of the four
	// outcome kinds.
	Convert(req domain.Request) domain.Outcome
	// ValidDigits returns the digit alphabet of the radix, in order.
	ValidDigits(radix domain.Radix) []rune
}
