// Package main is the entry point for the survival backpack manager.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vyrodovalexey/backpack/internal/config"
	"github.com/vyrodovalexey/backpack/internal/metrics"
	"github.com/vyrodovalexey/backpack/internal/session"
	"github.com/vyrodovalexey/backpack/internal/terminal"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

var errInterrupted = errors.New("interrupted by signal")

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errInterrupted) {
			return exitInterrupted
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

// rootOptions holds the command line flags.
type rootOptions struct {
	configPath string
	capacity   int
	nodeLimit  int
	logLevel   string
	logOutput  string
	noMetrics  bool
}

// newRootCommand creates the backpack command reading from in and writing to out.
func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "backpack",
		Short: "Survival backpack and tower escape organiser",
		Long: "Manage the starting loot of a survival game in an array or a linked backpack, " +
			"and organise tower escape components with bubble, insertion and selection sort.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runSession(cmd.Context(), cfg, in, out)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVar(&opts.capacity, "capacity", config.DefaultArrayCapacity, "array backpack capacity (1-50)")
	cmd.Flags().IntVar(&opts.nodeLimit, "node-limit", config.DefaultLinkedNodeLimit, "linked backpack node limit (0 = unlimited)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.logOutput, "log-output", config.DefaultLogOutput, "log destination (stderr, stdout or a file path)")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "disable session statistics")

	return cmd
}

// loadConfig loads file and environment configuration and applies the flags
// the user set explicitly on top.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.ArrayCapacity = opts.capacity
	}
	if flags.Changed("node-limit") {
		cfg.LinkedNodeLimit = opts.nodeLimit
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-output") {
		cfg.LogOutput = opts.logOutput
	}
	if opts.noMetrics {
		cfg.MetricsEnabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating flags: %w", err)
	}

	return cfg, nil
}

// runSession runs one interactive session until the player exits or a
// termination signal arrives.
func runSession(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	logger, err := initLogger(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("configuration loaded",
		zap.Int("array_capacity", cfg.ArrayCapacity),
		zap.Int("linked_node_limit", cfg.LinkedNodeLimit),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
	)

	var rec *metrics.Recorder
	if cfg.MetricsEnabled {
		rec = metrics.New()
	}

	sess := session.New(terminal.New(in, out), logger, rec, session.Options{
		ArrayCapacity:   cfg.ArrayCapacity,
		LinkedNodeLimit: cfg.LinkedNodeLimit,
	})

	// Run the session in a goroutine so a signal can end the process while
	// it is blocked reading input.
	sessionDone := make(chan error, 1)
	go func() {
		sessionDone <- sess.Run(ctx)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-sessionDone:
		sess.Close()
		if err != nil {
			logger.Error("session error", zap.Error(err))
			return err
		}
	case sig := <-shutdown:
		// The session goroutine may still be reading; its memory goes away
		// with the process.
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		return errInterrupted
	}

	logger.Info("session finished")
	return nil
}

// initLogger initializes a zap logger with the specified log level and output.
func initLogger(level, output string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}

	if output == "" {
		output = config.DefaultLogOutput
	}

	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
