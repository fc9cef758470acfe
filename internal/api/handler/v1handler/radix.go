package v1handler

import (
	"net/http"

	"baseconv/pkg/domain"
	"baseconv/pkg/serrors"

	"github.com/go-faster/jx"
)

func encodeDigits(e *jx.Encoder, digits []rune) {
	e.Arr(func(e *jx.Encoder) {
		for _, d := range digits {
			e.Str(string(d))
		}
	})
}

func (h *Handler) encodeRadix(e *jx.Encoder, r domain.Radix) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(r.String()) })
		e.Field("short", func(e *jx.Encoder) { e.Str(r.Short()) })
		e.Field("radix", func(e *jx.Encoder) { e.Int(r.Base()) })
		e.Field("digits", func(e *jx.Encoder) { encodeDigits(e, h.deps.Converter.ValidDigits(r)) })
	})
}

// ListRadixes handles GET /v1/radixes.
func (h *Handler) ListRadixes(_ *http.Request, e *jx.Encoder) error {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, r := range domain.Radixes() {
					h.encodeRadix(e, r)
				}
			})
		})
	})

	return nil
}

// Digits handles GET /v1/radixes/{radix}/digits, the keypad of a radix.
func (h *Handler) Digits(r *http.Request, e *jx.Encoder) error {
	radix, err := domain.ParseRadix(r.PathValue("radix"))
	if err != nil {
		return serrors.Wrap(serrors.ErrNotFound, err, "radix not found")
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("radix", func(e *jx.Encoder) { e.Str(radix.String()) })
		e.Field("digits", func(e *jx.Encoder) { encodeDigits(e, h.deps.Converter.ValidDigits(radix)) })
	})

	return nil
}
