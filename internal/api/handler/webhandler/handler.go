// Package webhandler serves the HTML converter page. The page keeps no
// server-side state: input and radices round-trip through the form, and every
// keypad or action button submits the form so the session is restored,
// updated and rendered again.
package webhandler

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"baseconv/internal/converter"
	"baseconv/internal/presenter"
	"baseconv/pkg/domain"
	"baseconv/pkg/logger"
	"baseconv/pkg/metrics"

	"go.uber.org/zap"
)

//go:embed templates/index.html.tmpl
var indexTemplate string

var indexPage = template.Must(template.New("index").Parse(indexTemplate)) //nolint: gochecknoglobals

// Deps are the collaborators of Handler.
type Deps struct {
	Converter converter.Converter
	// Conversions, when set, records every rendered conversion.
	Conversions *metrics.Conversions
	Sessions    presenter.Options
}

// Handler renders the converter page.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the page at the site root.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
}

type radixOption struct {
	Value        string
	Label        string
	FromSelected bool
	ToSelected   bool
}

type pageData struct {
	View    presenter.View
	Radixes []radixOption
	Keys    []string
}

// Session restores the page session from the form values and applies the
// submitted key or action. Unknown radix names fall back to the defaults.
func (h *Handler) Session(r *http.Request) *presenter.Session {
	q := r.URL.Query()
	radix := func(name string, fallback domain.Radix) domain.Radix {
		if v, err := domain.ParseRadix(q.Get(name)); err == nil {
			return v
		}

		return fallback
	}

	s := presenter.Restore(h.deps.Converter, h.deps.Sessions, presenter.State{
		Input: q.Get("input"),
		From:  radix("from", h.deps.Sessions.DefaultFrom),
		To:    radix("to", h.deps.Sessions.DefaultTo),
	})

	if key := q.Get("key"); utf8.RuneCountInString(key) == 1 {
		k, _ := utf8.DecodeRuneInString(key)
		s.Press(k)
	}

	switch q.Get("action") {
	case "backspace":
		s.Backspace()
	case "clear":
		s.Clear()
	case "swap":
		s.Swap()
	}

	return s
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := h.Session(r)

	start := time.Now()
	view := s.View()
	if h.deps.Conversions != nil {
		st := view.State
		h.deps.Conversions.Record(ctx, domain.Request{Input: st.Input, From: st.From, To: st.To},
			view.Outcome, time.Since(start))
	}

	data := pageData{View: view}
	for _, radix := range domain.Radixes() {
		name := radix.String()
		data.Radixes = append(data.Radixes, radixOption{
			Value:        strings.ToLower(radix.Short()),
			Label:        strings.ToUpper(name[:1]) + name[1:],
			FromSelected: radix == view.State.From,
			ToSelected:   radix == view.State.To,
		})
	}
	for _, k := range view.Keypad {
		data.Keys = append(data.Keys, string(k))
	}

	var buf bytes.Buffer
	if err := indexPage.Execute(&buf, data); err != nil {
		logger.Error(ctx, "could not render converter page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
