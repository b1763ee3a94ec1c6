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
	"github.com/jonathan/interview-assistant/internal/analytics"
	"github.com/jonathan/interview-assistant/internal/config"
	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/hrdata"
	"github.com/jonathan/interview-assistant/internal/llm"
	"github.com/jonathan/interview-assistant/internal/observability"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full interview pipeline for one employee",
	Long: `Runs question generation, response analysis, and recommendation synthesis
for a single interview and prints the outcome as JSON.

Without --db-url the employee is looked up in a built-in sample directory
(emp_001, emp_002) and department benchmarks use fixed defaults.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath    string
	runEmployeeID    string
	runInterviewType string
	runResponsesPath string
	runAPIKey        string
	runDatabaseURL   string
	runModelTier     string
	runVerbose       bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runEmployeeID, "employee", "e", "", "Employee ID to interview (required)")
	runCommand.Flags().StringVarP(&runInterviewType, "interview-type", "t", "PERFORMANCE_REVIEW", "Interview type (PERFORMANCE_REVIEW/PROMOTION/SKILL_ASSESSMENT/CAREER_DEVELOPMENT/EXIT)")
	runCommand.Flags().StringVarP(&runResponsesPath, "responses", "r", "", "Path to a JSON file mapping question numbers to responses")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to the sample directory)")
	runCommand.Flags().StringVar(&runModelTier, "model-tier", "", "Generation model tier (lite/standard/advanced)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print formatted stage summaries")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	if runEmployeeID == "" {
		return fmt.Errorf("--employee is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("an API key is required: set --api-key or GEMINI_API_KEY")
	}

	responses := map[string]string{}
	if runResponsesPath != "" {
		data, err := os.ReadFile(runResponsesPath)
		if err != nil {
			return fmt.Errorf("failed to read responses file: %w", err)
		}
		if err := json.Unmarshal(data, &responses); err != nil {
			return fmt.Errorf("failed to parse responses JSON: %w", err)
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

	outcome, err := coordinator.Run(ctx, agent.InterviewRequest{
		EmployeeID:    runEmployeeID,
		InterviewID:   uuid.New().String(),
		InterviewType: runInterviewType,
		Responses:     responses,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		if profile, err := store.GetEmployeeProfile(ctx, runEmployeeID); err == nil {
			printer.PrintEmployeeProfile(profile)
		}
		printer.PrintQuestions(outcome.Questions.Payload)
		printer.PrintAnalysis(outcome.Analysis.Payload)
		printer.PrintRecommendations(outcome.Recommendations.Payload)
	}

	encoded, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

// loadRunConfig merges the config file, CLI flags, and environment
func loadRunConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("model-tier") {
		cfg.ModelTier = runModelTier
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	return cfg, cfg.Validate()
}

// buildCollaborators wires the profile store and benchmark source, backed by
// PostgreSQL when a database URL is configured and by in-memory sample data
// otherwise.
func buildCollaborators(ctx context.Context, cfg config.Config) (agent.ProfileStore, agent.BenchmarkSource, func(), error) {
	if cfg.DatabaseURL == "" {
		return hrdata.NewSeededMemoryStore(), analytics.Defaults{}, func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return hrdata.NewStore(database), analytics.NewService(database), database.Close, nil
}
