package webhandler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"baseconv/internal/api/handler/webhandler"
	"baseconv/internal/converter"
	"baseconv/internal/presenter"
	"baseconv/pkg/domain"
	"baseconv/pkg/logger"
	"baseconv/pkg/metrics"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newHandler(t *testing.T, conversions *metrics.Conversions) *webhandler.Handler {
	t.Helper()

	return webhandler.New(webhandler.Deps{
		Converter:   converter.New(),
		Conversions: conversions,
		Sessions:    presenter.Options{DefaultFrom: domain.Decimal, DefaultTo: domain.Hexadecimal},
	})
}

func get(t *testing.T, h *webhandler.Handler, q url.Values) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	h.Register(mux)

	r := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	return w
}

func TestIndex_FreshPage(t *testing.T) {
	w := get(t, newHandler(t, nil), url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	require.Contains(t, body, "PROGRAMMER'S CALC")
	require.Contains(t, body, "Convert between number systems")
	require.Contains(t, body, "Convert From")
	require.Contains(t, body, "Convert To")
	require.Contains(t, body, `placeholder="Enter Dec number..."`)
	require.Contains(t, body, `<option value="dec" selected>Decimal</option>`)
	require.Contains(t, body, `<option value="hex" selected>Hexadecimal</option>`)
	require.Contains(t, body, `<button type="submit" name="key" value="9">9</button>`)
	require.NotContains(t, body, `value="A">A</button>`)
	require.NotContains(t, body, "Result (")
	require.NotContains(t, body, `class="error"`)
}

func TestIndex_Success(t *testing.T) {
	w := get(t, newHandler(t, nil), url.Values{"input": {"255"}, "from": {"dec"}, "to": {"hex"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "Result (Hex)")
	require.Contains(t, body, `<p class="value">FF</p>`)
}

func TestIndex_Messages(t *testing.T) {
	cases := []struct {
		name string
		q    url.Values
		msg  string
	}{
		{"same base", url.Values{"input": {"1"}, "from": {"bin"}, "to": {"bin"}}, presenter.MessageSameBase},
		{"invalid", url.Values{"input": {"2"}, "from": {"bin"}, "to": {"dec"}}, presenter.MessageInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := get(t, newHandler(t, nil), tc.q).Body.String()
			require.Contains(t, body, tc.msg)
			require.NotContains(t, body, "Result (")
		})
	}
}

func TestIndex_HexKeypad(t *testing.T) {
	body := get(t, newHandler(t, nil), url.Values{"from": {"hex"}, "to": {"dec"}}).Body.String()
	require.Contains(t, body, `<button type="submit" name="key" value="F">F</button>`)
	require.Contains(t, body, `placeholder="Enter Hex number..."`)
}

func TestIndex_UnknownPathNotFound(t *testing.T) {
	mux := http.NewServeMux()
	newHandler(t, nil).Register(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndex_EscapesInput(t *testing.T) {
	body := get(t, newHandler(t, nil), url.Values{"input": {`"><script>`}}).Body.String()
	require.NotContains(t, body, "<script>")
	require.Contains(t, body, presenter.MessageInvalid)
}

func sessionState(t *testing.T, q url.Values) presenter.State {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

	return newHandler(t, nil).Session(r).State()
}

func TestSession_Key(t *testing.T) {
	st := sessionState(t, url.Values{"input": {"1"}, "from": {"hex"}, "to": {"dec"}, "key": {"a"}})
	require.Equal(t, "1A", st.Input)

	st = sessionState(t, url.Values{"input": {"1"}, "from": {"bin"}, "to": {"dec"}, "key": {"2"}})
	require.Equal(t, "1", st.Input)

	st = sessionState(t, url.Values{"key": {"-"}})
	require.Equal(t, "-", st.Input)

	st = sessionState(t, url.Values{"input": {"1"}, "key": {"12"}})
	require.Equal(t, "1", st.Input)
}

func TestSession_Actions(t *testing.T) {
	st := sessionState(t, url.Values{"input": {"123"}, "action": {"backspace"}})
	require.Equal(t, "12", st.Input)

	st = sessionState(t, url.Values{"input": {"123"}, "action": {"clear"}})
	require.Empty(t, st.Input)

	st = sessionState(t, url.Values{"input": {"255"}, "from": {"dec"}, "to": {"hex"}, "action": {"swap"}})
	require.Equal(t, presenter.State{Input: "FF", From: domain.Hexadecimal, To: domain.Decimal}, st)
}

func TestSession_UnknownRadixFallsBack(t *testing.T) {
	st := sessionState(t, url.Values{"from": {"base3"}, "to": {"16"}})
	require.Equal(t, domain.Decimal, st.From)
	require.Equal(t, domain.Hexadecimal, st.To)

	st = sessionState(t, url.Values{"from": {"Binary"}, "to": {"oct"}})
	require.Equal(t, domain.Binary, st.From)
	require.Equal(t, domain.Octal, st.To)
}

func TestIndex_RecordsConversion(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	conversions, err := metrics.NewConversions(mp.Meter("test"))
	require.NoError(t, err)

	w := get(t, newHandler(t, conversions), url.Values{"input": {"255"}})
	require.Equal(t, http.StatusOK, w.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var found bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != metrics.ConversionsName {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		require.Equal(t, int64(1), sum.DataPoints[0].Value)
		found = true
	}
	require.True(t, found)
}
