// Package config provides 12-factor configuration for the calculator.
//
// Values are layered: built-in defaults, then an optional TOML or YAML
// file, then environment variables. CLI flags in cmd/rpncalc override all
// of them.
//
// Configuration Sections:
//   - Shell: prompt, output format (text or json) and banner
//   - Logging: log level and development mode
//   - Metrics: listen address, rate limit and CORS origins of the optional
//     /metrics endpoint
//
// Example Usage:
//
//	cfg, err := config.LoadFile("rpncalc.toml")
//	if err != nil {
//		return err
//	}
//
// Environment Variables:
//   - RPN_PROMPT, RPN_OUTPUT, RPN_BANNER
//   - RPN_LOG_LEVEL, RPN_LOG_DEV
//   - RPN_METRICS_ADDR, RPN_METRICS_RPS, RPN_METRICS_BURST
//   - RPN_METRICS_CORS_ORIGINS (comma separated)
package config
