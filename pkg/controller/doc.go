// Package controller contains HTTP middlewares and helper handlers used by the
// converter's HTTP front end.
//
// Middlewares:
//   - WithCORS: lets browser pages on other origins call the JSON API.
//   - WithLogger: attaches a request ID and request-scoped logger, echoes the
//     ID in the X-Request-Id response header and writes an access log line.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller
