// Package server serves the renderer over HTTP and WebSocket.
//
// Routes:
//
//	POST /render          document body in, text/html out
//	POST /render/{name}   render and publish under name, JSON location out
//	GET  /ws              one document per text frame, one reply per frame
//	GET  /healthz         liveness
//	GET  /metrics         Prometheus metrics, when configured
//
// Documents use the JSON/YAML schema of package tree. Failures are
// answered with {"error": {...}} bodies carrying a registered error code:
// 400 for malformed documents, 413 for bodies over MaxBodyBytes, 422 for
// unknown components and nesting past the depth limit, 502 when the
// publish store rejects a page.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	srv := server.New(server.DefaultConfig(),
//	    server.WithStore(store, "disk"),
//	    server.WithMetrics(middleware.NewMetrics(middleware.WithRegistry(reg)), reg),
//	)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	return srv.Run(ctx)
package server
