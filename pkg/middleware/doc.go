// Package middleware provides observability middleware for the render server.
//
// This package includes:
//   - OpenTelemetry request tracing and child spans for render work
//   - Prometheus request, render and WebSocket metrics
//
// Both are plain func(http.Handler) http.Handler middleware and fit any
// router; route labels come from chi when it is in use.
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("site"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Handlers continue the trace through r.Context():
//
//	ctx, span := middleware.StartSpan(r.Context(), "", "render.document")
//	html, err := node.Eval(renderer, registry)
//	middleware.EndSpan(span, err)
//
// # Prometheus Metrics
//
//	metrics := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(metrics.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// The Record* methods on Metrics count render failures, published pages and
// WebSocket activity. They are safe to call on a nil *Metrics.
package middleware
