package v1handler

import (
	"io"
	"net/http"
	"time"

	"baseconv/internal/presenter"
	"baseconv/pkg/domain"
	"baseconv/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ConvertRequest is the body of POST /v1/convert. From and To are radix
// names; empty values select the session defaults.
type ConvertRequest struct {
	Input string
	From  string
	To    string
}

// DecodeConvertRequest parses a ConvertRequest. Unknown fields are ignored;
// anything after the object other than whitespace is an error.
func DecodeConvertRequest(data []byte) (ConvertRequest, error) {
	if err := jx.DecodeBytes(data).Validate(); err != nil {
		return ConvertRequest{}, errors.Wrap(err, "validate convert request")
	}

	var req ConvertRequest
	err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		var target *string
		switch string(key) {
		case "input":
			target = &req.Input
		case "from":
			target = &req.From
		case "to":
			target = &req.To
		default:
			return d.Skip()
		}

		v, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		*target = v

		return nil
	})
	if err != nil {
		return ConvertRequest{}, errors.Wrap(err, "decode convert request")
	}

	return req, nil
}

func (h *Handler) radixOr(name string, fallback domain.Radix) (domain.Radix, error) {
	if name == "" {
		return fallback, nil
	}

	return domain.ParseRadix(name) //nolint: wrapcheck
}

// Convert handles POST /v1/convert. Every conversion outcome is a 200
// response; only unusable requests are errors.
func (h *Handler) Convert(r *http.Request, e *jx.Encoder) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(body) > MaxBodyBytes {
		return serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", MaxBodyBytes)
	}

	in, err := DecodeConvertRequest(body)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body")
	}

	from, err := h.radixOr(in.From, h.deps.Sessions.DefaultFrom)
	if err != nil {
		return err
	}
	to, err := h.radixOr(in.To, h.deps.Sessions.DefaultTo)
	if err != nil {
		return err
	}

	state := presenter.State{Input: in.Input, From: from, To: to}
	session := presenter.Restore(h.deps.Converter, h.deps.Sessions, state)

	start := time.Now()
	view := session.View()
	if h.deps.Conversions != nil {
		h.deps.Conversions.Record(r.Context(),
			domain.Request{Input: state.Input, From: from, To: to}, view.Outcome, time.Since(start))
	}

	EncodeView(e, view)

	return nil
}

// EncodeView writes the JSON representation of a conversion view.
func EncodeView(e *jx.Encoder, v presenter.View) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("outcome", func(e *jx.Encoder) { e.Str(v.Outcome.Kind.String()) })
		e.Field("from", func(e *jx.Encoder) { e.Str(v.State.From.String()) })
		e.Field("to", func(e *jx.Encoder) { e.Str(v.State.To.String()) })
		if v.Outcome.OK() {
			e.Field("result", func(e *jx.Encoder) { e.Str(v.Result) })
			e.Field("label", func(e *jx.Encoder) { e.Str(v.Label) })
		}
		if v.Message != "" {
			e.Field("message", func(e *jx.Encoder) { e.Str(v.Message) })
		}
	})
}
