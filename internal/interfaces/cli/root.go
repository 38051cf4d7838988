// Package cli implements the petmatch command line interface over the
// matching service.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	appmatching "github.com/turtacn/PetMatch-Engine/internal/application/matching"
	"github.com/turtacn/PetMatch-Engine/internal/config"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/cache"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/monitoring/prometheus"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Service      appmatching.Service
	OutputFormat string
}

// NewRootCommand creates the root command with global flags and all
// subcommands mounted.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "petmatch",
		Short:         "Pet compatibility scoring engine",
		Long:          "petmatch scores breed, genetic and whole-pet compatibility from the command line.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := buildContext(opts)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug/info/warn/error)")
	cmd.PersistentFlags().StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text/json)")

	cmd.AddCommand(NewBreedsCmd())
	cmd.AddCommand(NewMatchCmd())
	cmd.AddCommand(NewGeneticCmd())

	return cmd
}

// buildContext loads configuration and assembles the engine.
func buildContext(opts *RootOptions) (*CLIContext, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Hot-reload the log level when running against a config file, unless
	// the --log-level flag pinned it.
	if opts.ConfigPath != "" && opts.LogLevel == "" {
		config.Watch(opts.ConfigPath, func(updated *config.Config) {
			if logging.SetLevel(logger, updated.Log.Level) {
				logger.Info("log level updated",
					logging.String("level", updated.Log.Level))
			}
		})
	}

	var svcOpts []appmatching.Option
	if cfg.Metrics.Enabled {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("init metrics: %w", err)
		}
		svcOpts = append(svcOpts, appmatching.WithMetrics(prometheus.NewEngineMetrics(collector)))
	}
	if cfg.Redis.Enabled {
		client := cache.NewRedisClient(cfg.Redis)
		svcOpts = append(svcOpts, appmatching.WithResultCache(
			cache.NewRedisCache(client, logger, cache.WithDefaultTTL(cfg.Redis.DefaultTTL))))
	}

	if opts.OutputFormat != "text" && opts.OutputFormat != "json" {
		return nil, fmt.Errorf("invalid output format: %s (must be text/json)", opts.OutputFormat)
	}

	return &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Service:      appmatching.NewService(cfg.Engine, logger, svcOpts...),
		OutputFormat: opts.OutputFormat,
	}, nil
}

// GetCLIContext extracts the CLIContext installed by the root command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	cliCtx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, fmt.Errorf("cli context not initialized")
	}
	return cliCtx, nil
}

// PrintResult renders v on the command's stdout in the selected
// format. Text rendering falls back to JSON for values without a
// dedicated formatter.
func PrintResult(cmd *cobra.Command, format string, v interface{}) error {
	if format == "json" {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s.String())
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// joinReasons renders a reason list as an indented bullet block.
func joinReasons(reasons []string) string {
	var b strings.Builder
	for _, r := range reasons {
		b.WriteString("  - ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// readJSONFile decodes a JSON document into dest.
func readJSONFile(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

//Personal.AI order the ending
