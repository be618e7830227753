/*
Package monitoring provides Prometheus metrics for the calculator.

# Overview

Metrics implements the session manager's Recorder, so every dispatched word,
every diagnostic and every change in session count or stack depth is
counted. Each Metrics owns a private registry.

# Metrics

  - rpncalc_commands_total{kind}
  - rpncalc_diagnostics_total{kind}
  - rpncalc_sessions_active
  - rpncalc_stack_depth{session}
  - rpncalc_http_requests_total{method,path,status}
  - rpncalc_http_request_duration_seconds{method,path}
  - rpncalc_uptime_seconds

# Usage

	metrics := monitoring.NewMetrics()
	mgr := session.NewManager(session.WithRecorder(metrics))

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
