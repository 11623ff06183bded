// Package cmd implements the docskit CLI commands.
//
// The root command loads docskit.yaml from the project directory, builds a
// zap logger for diagnostics, and dispatches to subcommands (render, build,
// datetime, store, props, version).
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/docskit/internal/config"
	"github.com/go-drift/docskit/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	projectDir string
	verbose    bool
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "docskit",
	Short: "docskit - component documentation pages from YAML",
	Long: `docskit renders documentation pages for UI components. Pages are YAML
files listing blocks (alerts, cards, code, props tables, markdown) and live
playgrounds whose values are kept in the configured storage backend.

Use "docskit <command> --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
		errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "project directory (default: nearest directory with docskit.yaml or go.mod)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output and stack traces")
}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	_ = logger.Sync()
	return err
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

// loadConfig resolves docskit.yaml for the selected project directory.
func loadConfig() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			root, err = os.Getwd()
			if err != nil {
				return nil, err
			}
		}
		dir = root
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("config resolved",
		zap.String("root", cfg.Root),
		zap.String("site", cfg.SiteName),
		zap.String("storage", cfg.StorageBackend))
	return cfg, nil
}
