package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/interview-assistant/internal/config"
	"github.com/jonathan/interview-assistant/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveModelTier  string
	serveBatchLimit int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes employee and interview records, the agent pipeline stages, and department analytics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveModelTier, "model-tier", "", "Generation model tier (lite/standard/advanced)")
	serveCmd.Flags().IntVar(&serveBatchLimit, "batch-limit", 0, "Max concurrent interview pipelines")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("model-tier") {
		cfg.ModelTier = serveModelTier
	}
	if cmd.Flags().Changed("batch-limit") {
		cfg.BatchLimit = serveBatchLimit
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	//nolint:errcheck // flushing on exit
	defer logger.Sync()

	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; generation endpoints will be unavailable")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		ModelTier:   cfg.ModelTier,
		BatchLimit:  cfg.BatchLimit,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
