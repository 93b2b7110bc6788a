// Package middleware provides net/http middleware for the markup preview
// service.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware
//   - Structured request logging
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware starts a server span per request. Spans are
// named after the matched chi route and carry the method, target, route
// and response status.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("markup-preview"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// Metrics collects request and render statistics:
//   - markup_requests_total: Requests by route and status
//   - markup_request_duration_seconds: Request duration histogram
//   - markup_request_errors_total: 4xx and 5xx responses by category
//   - markup_rendered_bytes: Rendered markup size by kind
//   - markup_render_errors_total: Rejected documents by error code
//
//	m := middleware.NewMetrics()
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// # Context Propagation
//
// The span travels in the request context, so handlers can annotate it:
//
//	if span := middleware.SpanFromContext(r.Context()); span != nil {
//	    span.SetAttributes(attribute.Int("markup.attrs", n))
//	}
package middleware
