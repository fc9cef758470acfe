package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"baseconv/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestPprofMux_Cmdline(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix+"cmdline", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cmdline", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
