package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/interview-assistant/internal/agent"
	"github.com/jonathan/interview-assistant/internal/config"
	"github.com/jonathan/interview-assistant/internal/llm"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Run the interview pipeline for several employees concurrently",
	Long: `Reads a JSON array of interview requests and runs the full pipeline for
each, capped at the configured concurrency. Interview IDs are assigned when
omitted. The outcomes are printed as JSON in request order.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath   string
	batchRequestsPath string
	batchAPIKey       string
	batchDatabaseURL  string
	batchModelTier    string
	batchLimit        int
	batchVerbose      bool
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVarP(&batchRequestsPath, "requests", "f", "", "Path to a JSON file with an array of interview requests (required)")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	batchCommand.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to the sample directory)")
	batchCommand.Flags().StringVar(&batchModelTier, "model-tier", "", "Generation model tier (lite/standard/advanced)")
	batchCommand.Flags().IntVar(&batchLimit, "batch-limit", 0, "Max concurrent interview pipelines")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Log pipeline progress")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if batchConfigPath != "" {
		loaded, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}
	if cmd.Flags().Changed("model-tier") {
		cfg.ModelTier = batchModelTier
	}
	if cmd.Flags().Changed("batch-limit") {
		cfg.BatchLimit = batchLimit
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if batchRequestsPath == "" {
		return fmt.Errorf("--requests is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("an API key is required: set --api-key or GEMINI_API_KEY")
	}

	data, err := os.ReadFile(batchRequestsPath)
	if err != nil {
		return fmt.Errorf("failed to read requests file: %w", err)
	}
	var reqs []agent.InterviewRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return fmt.Errorf("failed to parse requests JSON: %w", err)
	}
	if len(reqs) == 0 {
		return fmt.Errorf("requests file contains no interview requests")
	}
	for i := range reqs {
		if reqs[i].InterviewID == "" {
			reqs[i].InterviewID = uuid.New().String()
		}
	}

	store, bench, cleanup, err := buildCollaborators(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	//nolint:errcheck // closing on exit
	defer client.Close()

	logger := zap.NewNop()
	if cfg.Verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}

	gen := llm.NewStageGenerator(client, llm.ModelTier(cfg.ModelTier))
	runner := agent.NewRunner(gen, store, bench, agent.WithLogger(logger))
	coordinator := agent.NewCoordinator(runner, agent.WithCoordinatorLogger(logger))

	outcomes, err := coordinator.RunBatch(ctx, reqs, cfg.BatchLimit)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outcomes: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
