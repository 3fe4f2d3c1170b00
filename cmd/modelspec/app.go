package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/modelspec/config"
	"github.com/c360studio/modelspec/output"
	"github.com/c360studio/modelspec/validate"
)

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		format     string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Domain model validator",
		Long: `Modelspec validates domain model trees.

A model tree describes entities, their attributes and behaviors, shared
types, enumerations, and validation profiles as YAML documents. Modelspec
checks the tree for structural correctness, naming-convention compliance,
and semantic consistency, and reports severity-tagged findings.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&format, "format", "text", "Report format (text, json)")

	cmd.AddCommand(validateCmd(&configPath, &logLevel, &format))
	cmd.AddCommand(watchCmd(&configPath, &logLevel, &format))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func validateCmd(configPath, logLevel, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a model tree or a single document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			logger, err := setupLogging(*logLevel)
			if err != nil {
				return err
			}

			outFormat := output.Format(strings.ToLower(*format))
			if !outFormat.IsValid() {
				return fmt.Errorf("unknown format: %s", *format)
			}

			cfg, absRoot, err := loadConfig(*configPath, root, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			engine := validate.New(cfg, logger)
			result := engine.Run(ctx, absRoot)

			if err := output.Write(cmd.OutOrStdout(), result, outFormat); err != nil {
				return err
			}

			if code := output.ExitCode(result); code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
}

// setupLogging configures the default slog logger from the level flag.
func setupLogging(logLevel string) (*slog.Logger, error) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s", logLevel)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}

// loadConfig resolves the root path and loads layered configuration. An
// explicit --config path takes precedence over the layered lookup.
func loadConfig(configPath, root string, logger *slog.Logger) (*config.Config, string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, "", fmt.Errorf("resolve root path: %w", err)
	}

	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, "", err
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, absRoot, nil
	}

	startDir := absRoot
	if info, statErr := os.Stat(absRoot); statErr == nil && !info.IsDir() {
		startDir = filepath.Dir(absRoot)
	}

	cfg, err := config.NewLoader(logger).Load(startDir)
	if err != nil {
		return nil, "", err
	}
	return cfg, absRoot, nil
}
