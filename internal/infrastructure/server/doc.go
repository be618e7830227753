// Package server runs the optional HTTP endpoint that exposes calculator
// metrics while the shell is in use.
//
// Routes:
//   - GET /metrics: Prometheus exposition of the manager's registry
//   - GET /healthz: JSON status with a counter snapshot
package server
