package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/finance-literacy/internal/logging"
	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/internal/server"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagServerConfig  string
	flagServerAddress string
	flagMaxBodySize   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&flagServerAddress, "address", "", "listen address override")
	serveCmd.Flags().StringVar(&flagMaxBodySize, "max-body-size", "", "request body limit override (e.g. 64KB, 1MB)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := server.LoadConfig(flagServerConfig)
	if err != nil {
		return fmt.Errorf("failed to load server configuration at %s: %w", flagServerConfig, err)
	}
	if flagServerAddress != "" {
		cfg.Address = flagServerAddress
	}
	if flagMaxBodySize != "" {
		if err := cfg.OverrideBodySize(flagMaxBodySize); err != nil {
			return fmt.Errorf("invalid --max-body-size: %w", err)
		}
	}

	// The served workspace may log, store and quiz differently from the CLI
	ws := cfg.Workspace(*conf)
	if ws.Logging != conf.Logging {
		l, err := logging.NewLogger(ws.Logging, flagLogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize server logger: %w", err)
		}
		logger = l
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openStore(ctx, ws.Storage)
	if err != nil {
		return err
	}
	defer closeStore(closer)

	tracker := progress.NewTracker(store, logger)
	tracker.Load(ctx)

	handler := server.NewHandler(logger, cfg.BodySizeBytes(), version, server.Dependencies{
		Tracker:     tracker,
		QuizOptions: ws.Quiz.QuizOptions(),
	})

	logger.Debug("workspace ready",
		zap.String("op", "main.runServe"),
		zap.String("storage", ws.Storage.Driver),
		zap.String("difficulty", ws.Quiz.Difficulty),
		zap.Duration("advanceDelay", ws.Quiz.AdvanceDelay),
		zap.Int("bestScore", tracker.Current().BestQuizScore),
	)
	return server.Run(ctx, logger, cfg, handler)
}
