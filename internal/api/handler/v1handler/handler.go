// Package v1handler implements the JSON conversion API mounted under /v1.
// Request and response bodies are read and written with go-faster/jx.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"baseconv/internal/converter"
	"baseconv/internal/presenter"
	"baseconv/pkg/logger"
	"baseconv/pkg/metrics"
	"baseconv/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// MaxBodyBytes bounds the size of request bodies.
const MaxBodyBytes = 1 << 20

// Deps are the collaborators of Handler.
type Deps struct {
	Converter converter.Converter
	// Conversions, when set, records every conversion.
	Conversions *metrics.Conversions
	// Sessions holds the default radices used when a request omits them.
	Sessions presenter.Options
}

// Handler serves the v1 API.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/convert", h.serve(h.Convert))
	mux.HandleFunc("GET /v1/radixes", h.serve(h.ListRadixes))
	mux.HandleFunc("GET /v1/radixes/{radix}/digits", h.serve(h.Digits))
}

// ErrorResponse is the rendered form of an error returned by a route.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// NewError maps err to a status code and a client-facing message. Errors
// without a semantic kind, and internal ones, are logged and reported as a
// generic internal error.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)

	var status int
	var fallback string
	switch {
	case errors.Is(kind, serrors.ErrBadRequest):
		status, fallback = http.StatusBadRequest, "bad request"
	case errors.Is(kind, serrors.ErrNotFound):
		status, fallback = http.StatusNotFound, "resource not found"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       serrors.ErrInternal.Error(),
			Message:    "internal error",
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = fallback
	}

	return &ErrorResponse{StatusCode: status, Code: kind.Error(), Message: msg}
}

// route handles a request and writes its JSON body into e.
type route func(r *http.Request, e *jx.Encoder) error

// serve adapts a route to an http.HandlerFunc, rendering errors through NewError.
func (h *Handler) serve(fn route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)

		status := http.StatusOK
		if err := fn(r, e); err != nil {
			res := h.NewError(r.Context(), err)
			status = res.StatusCode
			e.Reset()
			encodeError(e, res)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(e.Bytes())
	}
}

func encodeError(e *jx.Encoder, res *ErrorResponse) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
				e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
			})
		})
	})
}
