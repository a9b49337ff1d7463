// Package main provides the kjopekraft binary entry point.
// kjopekraft tracks salary history against inflation and Norwegian income tax.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "kjopekraft"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand
type options struct {
	profilePath string
	logLevel    string
	logger      *slog.Logger
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Salary purchasing power and Norwegian tax calculator",
		Long: `kjopekraft compares a salary history with consumer price inflation.

It provides:
- Inflation-adjusted salary series and year-over-year tables
- Gross to net income using Norwegian tax rules
- Raise targets for salary negotiations`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.logLevel, cmd.ErrOrStderr())
			slog.SetDefault(opts.logger)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.profilePath, "config", "c", "salary.yaml", "Salary profile path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		reportCmd(opts),
		taxCmd(opts),
		grossCmd(opts),
		adjustCmd(opts),
		negotiateCmd(opts),
		payPointCmd(opts),
		validateCmd(opts),
		initCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// slogAdapter exposes a slog.Logger through the calculation.Logger interface.
type slogAdapter struct {
	l *slog.Logger
}

var _ calculation.Logger = slogAdapter{}

func (a slogAdapter) Debugf(format string, args ...any) { a.l.Debug(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Infof(format string, args ...any)  { a.l.Info(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Warnf(format string, args ...any)  { a.l.Warn(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Errorf(format string, args ...any) { a.l.Error(fmt.Sprintf(format, args...)) }

func (o *options) calcLogger() calculation.Logger {
	if o.logger == nil {
		return calculation.NopLogger{}
	}
	return slogAdapter{l: o.logger.With("component", "calculation")}
}
