// Package main is the entry point for rpncalc, an interactive Reverse
// Polish Notation calculator with named sessions.
//
// Configuration:
//   - Environment variables with the RPN_ prefix (12-factor)
//   - An optional TOML or YAML file given with -config
//   - CLI flags (override both)
//
// Usage:
//
//	# Interactive
//	./rpncalc
//
//	# One-shot evaluation
//	./rpncalc -e "3 4 + 2 *"
//
//	# JSON output with metrics on :9090
//	./rpncalc -output json -metrics-addr :9090
//
// Signals:
//   - SIGINT, SIGTERM: stop the shell and the metrics server
package main
