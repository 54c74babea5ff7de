// Package middleware provides the HTTP middleware stack for the calculator
// and unit conversion service.
//
// Middleware:
//   - CORS: cross-origin access, wildcard by default
//   - RateLimit: per-IP token bucket with idle eviction
//   - GlobalRateLimit: one bucket shared by all clients
//   - RequestID: X-Request-ID propagation, generated with uuid when absent
//   - Logger: one zap line per request, level chosen by status
//   - BodyLimit: caps request bodies with http.MaxBytesReader
//
// Example Usage:
//
//	router.Use(middleware.RequestID(), middleware.Logger(log))
//	cors, err := middleware.CORS(middleware.DefaultCORSConfig())
//	if err != nil {
//		return err
//	}
//	router.Use(cors)
//	router.Use(middleware.BodyLimit(utils.MaxJSONSize))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
