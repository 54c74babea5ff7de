// Package server assembles the HTTP service.
//
// NewServer registers the math provider, builds the middleware stack and
// routes, and wraps the engine in gzip compression when enabled. Run blocks
// until Shutdown is called.
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	go srv.Run()
//	defer srv.Shutdown(ctx)
package server
