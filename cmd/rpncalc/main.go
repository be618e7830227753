package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/rpncalc/internal/domain/session"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/config"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/server"
	"github.com/GriffinCanCode/rpncalc/internal/logging"
	"github.com/GriffinCanCode/rpncalc/internal/shell"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the command line; flags left unset keep the configured value
type options struct {
	configPath  string
	logLevel    string
	dev         bool
	output      string
	metricsAddr string
	expr        string
	version     bool
	set         map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{set: make(map[string]bool)}
	fs.StringVar(&opts.configPath, "config", "", "Path to a .toml or .yaml config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.dev, "dev", false, "Development logging (console, debug)")
	fs.StringVar(&opts.output, "output", "", "Output format (text, json)")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics and /healthz on this address")
	fs.StringVar(&opts.expr, "e", "", "Evaluate one line, print the stack and exit")
	fs.BoolVar(&opts.version, "version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// apply lets explicitly set flags override file and environment values
func (o *options) apply(cfg *config.Config) error {
	if o.set["log-level"] {
		cfg.Logging.Level = o.logLevel
	}
	if o.set["dev"] {
		cfg.Logging.Development = o.dev
	}
	if o.set["output"] {
		cfg.Shell.Output = o.output
	}
	if o.set["metrics-addr"] {
		cfg.Metrics.Addr = o.metricsAddr
	}
	if o.set["e"] {
		cfg.Shell.Banner = false
	}
	return cfg.Validate()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "rpncalc %s\n", version)
		return 0
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LoggerConfig())
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	metrics := monitoring.NewMetrics()
	mgr := session.NewManager(
		session.WithLogger(logger.Logger),
		session.WithRecorder(metrics),
	)

	if cfg.Metrics.Addr != "" {
		srv := server.NewMetricsServer(cfg.Metrics, metrics, logger.Logger, cfg.Logging.Development)
		if err := srv.Start(); err != nil {
			logger.Error("Failed to start metrics server", zap.Error(err))
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Warn("Metrics server shutdown failed", zap.Error(err))
			}
		}()
	}

	sh := shell.New(mgr, cfg.Shell, logger.Logger, stdin, stdout)

	if opts.set["e"] {
		if _, err := sh.RunLine(opts.expr); err != nil {
			logger.Error("Failed to write output", zap.Error(err))
			return 1
		}
		return 0
	}

	logger.Info("Starting shell",
		zap.String("version", version),
		zap.String("output", cfg.Shell.Output),
		zap.String("metrics_addr", cfg.Metrics.Addr))

	if err := sh.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Interrupted")
			return 130
		}
		logger.Error("Shell stopped", zap.Error(err))
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}
