// Package middleware provides the HTTP guards used by the metrics endpoint.
//
// Middleware:
//   - CORS: read-only cross-origin access for browser dashboards
//   - RateLimit: per-IP token bucket with idle client cleanup
//   - GlobalRateLimit: one token bucket shared by every client
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.ReadOnlyCORSConfig(origins)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
