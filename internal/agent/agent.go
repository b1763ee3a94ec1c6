package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/interview-assistant/internal/prompts"
	"github.com/jonathan/interview-assistant/internal/types"
)

// Kind names an agent pipeline stage
type Kind string

// Agent kinds
const (
	KindQuestionGenerator Kind = "question_generator"
	KindResponseAnalyzer  Kind = "response_analyzer"
	KindDecisionSupport   Kind = "decision_support"
	KindCoordinator       Kind = "coordinator"
)

// Generator is the external text-generation capability. The core sends a
// fixed instruction set plus an assembled prompt and receives raw text; it
// does not retry and never substitutes a default result on failure.
type Generator interface {
	Generate(ctx context.Context, instructions, prompt string) (string, error)
}

// ProfileStore provides employee profiles and job requirements
type ProfileStore interface {
	GetEmployeeProfile(ctx context.Context, id string) (*types.EmployeeProfile, error)
	GetJobRequirements(ctx context.Context, position, department string) (types.JobRequirements, error)
}

// BenchmarkSource provides department performance benchmarks
type BenchmarkSource interface {
	GetDepartmentBenchmarks(ctx context.Context, department string) (types.DepartmentBenchmarks, error)
}

// Metadata is the per-stage metadata sub-map: counts, timestamps, and the
// confidence/quality score.
type Metadata map[string]any

// Metadata keys
const (
	MetaEmployeeID           = "employee_id"
	MetaInterviewID          = "interview_id"
	MetaInterviewType        = "interview_type"
	MetaTotalQuestions       = "total_questions"
	MetaGeneratedAt          = "generated_at"
	MetaAgentConfidence      = "agent_confidence"
	MetaAnalyzedResponses    = "analyzed_responses"
	MetaAnalysisTimestamp    = "analysis_timestamp"
	MetaConfidenceLevel      = "confidence_level"
	MetaTotalRecommendations = "total_recommendations"
	MetaHighPriorityCount    = "high_priority_count"
)

// Result is one transient stage output: the structured payload plus metadata.
// Stages never mutate inputs; every invocation returns a fresh Result.
type Result[T any] struct {
	Payload  T          `json:"payload"`
	Metadata Metadata   `json:"metadata"`
}

// Stage payload result aliases
type (
	// QuestionsResult is the question generation stage output
	QuestionsResult = Result[[]types.GeneratedQuestion]
	// AnalysisStageResult is the response analysis stage output
	AnalysisStageResult = Result[*types.AnalysisResult]
	// RecommendationsResult is the decision support stage output
	RecommendationsResult = Result[*types.RecommendationSet]
)

// stageSpec is the per-kind configuration record driving the generic stage
// pipeline: required fields, prompt assembly, structuring, and scoring.
type stageSpec[T any] struct {
	kind           Kind
	requiredFields []string
	instructions   string
	assemble       func(context.Context, *Runner, Context) (string, error)
	structure      func(string, Context) T
	score          func(T) float64
	metadata       func(T, Context, float64) Metadata
}

// Runner executes agent stages against a generator and HR data collaborators.
// It holds no per-invocation state; concurrent Process calls are independent.
type Runner struct {
	gen    Generator
	store  ProfileStore
	bench  BenchmarkSource
	logger *zap.Logger

	questionStructurer       QuestionStructurer
	analysisStructurer       AnalysisStructurer
	recommendationStructurer RecommendationStructurer
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the structured logger used by all stages
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithQuestionStructurer replaces the placeholder question structurer
func WithQuestionStructurer(s QuestionStructurer) Option {
	return func(r *Runner) { r.questionStructurer = s }
}

// WithAnalysisStructurer replaces the placeholder analysis structurer
func WithAnalysisStructurer(s AnalysisStructurer) Option {
	return func(r *Runner) { r.analysisStructurer = s }
}

// WithRecommendationStructurer replaces the placeholder recommendation structurer
func WithRecommendationStructurer(s RecommendationStructurer) Option {
	return func(r *Runner) { r.recommendationStructurer = s }
}

// NewRunner creates a stage runner wired to the given collaborators.
// Structurers default to the deterministic placeholders.
func NewRunner(gen Generator, store ProfileStore, bench BenchmarkSource, opts ...Option) *Runner {
	r := &Runner{
		gen:                      gen,
		store:                    store,
		bench:                    bench,
		logger:                   zap.NewNop(),
		questionStructurer:       StaticQuestionStructurer,
		analysisStructurer:       StaticAnalysisStructurer,
		recommendationStructurer: StaticRecommendationStructurer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateQuestions runs the question generation stage.
// Required context fields: employee_id, interview_type.
func (r *Runner) GenerateQuestions(ctx context.Context, in Context) (*QuestionsResult, error) {
	return runStage(ctx, r, stageSpec[[]types.GeneratedQuestion]{
		kind:           KindQuestionGenerator,
		requiredFields: []string{FieldEmployeeID, FieldInterviewType},
		instructions:   prompts.MustGet("agents.json", string(KindQuestionGenerator)),
		assemble:       assembleQuestionContext,
		structure:      r.questionStructurer,
		score:          QuestionQuality,
		metadata: func(questions []types.GeneratedQuestion, in Context, score float64) Metadata {
			return Metadata{
				MetaEmployeeID:      in.String(FieldEmployeeID),
				MetaInterviewType:   in.String(FieldInterviewType),
				MetaTotalQuestions:  len(questions),
				MetaGeneratedAt:     timestampValue(in),
				MetaAgentConfidence: score,
			}
		},
	}, in)
}

// AnalyzeResponses runs the response analysis stage.
// Required context fields: interview_id, responses, questions, employee_id.
func (r *Runner) AnalyzeResponses(ctx context.Context, in Context) (*AnalysisStageResult, error) {
	return runStage(ctx, r, stageSpec[*types.AnalysisResult]{
		kind:           KindResponseAnalyzer,
		requiredFields: []string{FieldInterviewID, FieldResponses, FieldQuestions, FieldEmployeeID},
		instructions:   prompts.MustGet("agents.json", string(KindResponseAnalyzer)),
		assemble:       assembleAnalysisContext,
		structure:      r.analysisStructurer,
		score:          AnalysisConfidence,
		metadata: func(_ *types.AnalysisResult, in Context, score float64) Metadata {
			return Metadata{
				MetaInterviewID:       in.String(FieldInterviewID),
				MetaAnalyzedResponses: len(in.Responses()),
				MetaAnalysisTimestamp: timestampValue(in),
				MetaConfidenceLevel:   score,
			}
		},
	}, in)
}

// Recommend runs the decision support stage.
// Required context fields: employee_id, analysis.
func (r *Runner) Recommend(ctx context.Context, in Context) (*RecommendationsResult, error) {
	return runStage(ctx, r, stageSpec[*types.RecommendationSet]{
		kind:           KindDecisionSupport,
		requiredFields: []string{FieldEmployeeID, FieldAnalysis},
		instructions:   prompts.MustGet("agents.json", string(KindDecisionSupport)),
		assemble:       assembleRecommendationContext,
		structure:      r.recommendationStructurer,
		score:          RecommendationQuality,
		metadata: func(set *types.RecommendationSet, in Context, score float64) Metadata {
			total, highPriority := 0, 0
			if set != nil {
				total = len(set.Items)
				highPriority = set.HighPriorityCount()
			}
			return Metadata{
				MetaEmployeeID:           in.String(FieldEmployeeID),
				MetaTotalRecommendations: total,
				MetaHighPriorityCount:    highPriority,
				MetaGeneratedAt:          timestampValue(in),
				MetaConfidenceLevel:      score,
			}
		},
	}, in)
}

// runStage is the generic stage pipeline: validate required fields, assemble
// the prompt, invoke generation, structure the raw text, score the result.
// Validation failures are returned before any external call; collaborator
// failures are wrapped with stage-identifying context but keep their kind.
func runStage[T any](ctx context.Context, r *Runner, spec stageSpec[T], in Context) (*Result[T], error) {
	if err := in.Require(spec.requiredFields...); err != nil {
		return nil, err
	}

	subject := in.String(FieldEmployeeID)
	if subject == "" {
		subject = in.String(FieldInterviewID)
	}
	logger := r.logger.With(
		zap.String("stage", string(spec.kind)),
		zap.String("subject", subject),
	)

	prompt, err := spec.assemble(ctx, r, in)
	if err != nil {
		logger.Error("context assembly failed", zap.Error(err))
		return nil, &StageError{Stage: spec.kind, Subject: subject, Cause: err}
	}

	raw, err := r.gen.Generate(ctx, spec.instructions, prompt)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return nil, &StageError{
			Stage:   spec.kind,
			Subject: subject,
			Cause:   &ExternalServiceError{Service: "generation", Cause: err},
		}
	}

	payload := spec.structure(raw, in)
	score := spec.score(payload)
	logger.Info("stage complete", zap.Float64("confidence", score))

	return &Result[T]{
		Payload:  payload,
		Metadata: spec.metadata(payload, in, score),
	}, nil
}

// timestampValue returns the threaded pipeline timestamp, or nil when unset
func timestampValue(in Context) any {
	ts := in.Timestamp()
	if ts.IsZero() {
		return nil
	}
	return ts
}
