package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/finance-literacy/internal/config"
	"github.com/iwvelando/finance-literacy/internal/logging"
	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/finance"
	"github.com/iwvelando/finance-literacy/pkg/output"
	"github.com/iwvelando/finance-literacy/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	flagConfig       string
	flagEnvFile      string
	flagLogLevel     string
	flagOutputFormat string
)

// Loaded by the root command before any subcommand runs.
var (
	conf         *config.Configuration
	logger       *zap.Logger
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:               "finance-literacy",
	Short:             "Personal finance education toolkit",
	Long:              "Plan a budget, project investment growth, read financial tips and test yourself with a quiz.",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "optional dotenv file with FINLIT_ overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagOutputFormat, "output-format", "", "type of output override: pretty, json")
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return err
	}

	var err error
	conf, err = config.LoadConfiguration(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", flagConfig, err)
	}

	logger, err = logging.NewLogger(conf.Logging, flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// CLI override takes precedence over config
	outputFormat = conf.Output.Format
	if flagOutputFormat != "" {
		outputFormat = flagOutputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("op", "main.setup"),
		zap.String("command", cmd.Name()),
		zap.String("storage", conf.Storage.Driver),
		zap.String("outputFormat", outputFormat),
	)
	return nil
}

func newRenderer(w io.Writer) (*output.Renderer, error) {
	return output.NewRenderer(w, outputFormat)
}

// openStore opens the progress store described by storage.
func openStore(ctx context.Context, storage config.StorageConfig) (progress.Store, io.Closer, error) {
	store, closer, err := progress.Open(ctx, storage.StoreOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s progress store: %w", storage.Driver, err)
	}
	return store, closer, nil
}

func closeStore(closer io.Closer) {
	if err := closer.Close(); err != nil {
		logger.Warn("failed to close progress store",
			zap.String("op", "main.closeStore"),
			zap.Error(err),
		)
	}
}

// The CLI has no long-lived workspace, so the last planned budget is kept in
// the store next to the progress record.

func saveBudget(ctx context.Context, store progress.Store, data finance.BudgetData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode budget: %w", err)
	}
	return store.Set(ctx, constants.BudgetKey, string(raw))
}

func loadBudget(ctx context.Context, store progress.Store) finance.BudgetData {
	var data finance.BudgetData
	raw, ok, err := store.Get(ctx, constants.BudgetKey)
	if err != nil || !ok {
		return data
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		logger.Warn("stored budget is malformed",
			zap.String("op", "main.loadBudget"),
			zap.Error(err),
		)
		return finance.BudgetData{}
	}
	return data.Normalize()
}
