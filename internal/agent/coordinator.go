package agent

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// InterviewRequest is the input for one full interview pipeline run.
// Responses are collected externally between question generation and
// analysis; a full run therefore expects them up front.
type InterviewRequest struct {
	EmployeeID    string            `json:"employee_id"`
	InterviewID   string            `json:"interview_id"`
	InterviewType string            `json:"interview_type"`
	Responses     map[string]string `json:"responses"`
}

// InterviewOutcome aggregates the per-stage result envelopes for one interview
type InterviewOutcome struct {
	Questions       *QuestionsResult       `json:"questions"`
	Analysis        *AnalysisStageResult   `json:"analysis"`
	Recommendations *RecommendationsResult `json:"recommendations"`
}

// Coordinator sequences the agent stages for one interview lifecycle:
// question generation, response analysis, recommendation synthesis. Stage
// ordering is fixed by data dependency; a failing stage aborts the sequence
// and its failure surfaces to the caller. The coordinator holds no state
// across invocations.
type Coordinator struct {
	runner *Runner
	logger *zap.Logger
	now    func() time.Time
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithCoordinatorLogger sets the coordinator's structured logger
func WithCoordinatorLogger(logger *zap.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// withClock overrides the coordinator clock. Used by tests.
func withClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) { c.now = now }
}

// NewCoordinator creates a coordinator over the given stage runner
func NewCoordinator(runner *Runner, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		runner: runner,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the full pipeline for one interview: generate questions,
// analyze the externally collected responses against them, then synthesize
// recommendations from the analysis. Each stage receives a fresh context
// carrying the employee id and the run timestamp.
func (c *Coordinator) Run(ctx context.Context, req InterviewRequest) (*InterviewOutcome, error) {
	timestamp := c.now()
	logger := c.logger.With(
		zap.String("employee_id", req.EmployeeID),
		zap.String("interview_id", req.InterviewID),
	)

	logger.Info("starting interview pipeline", zap.String("interview_type", req.InterviewType))

	questions, err := c.runner.GenerateQuestions(ctx, Context{
		FieldEmployeeID:    req.EmployeeID,
		FieldInterviewType: req.InterviewType,
		FieldTimestamp:     timestamp,
	})
	if err != nil {
		return nil, err
	}

	analysis, err := c.runner.AnalyzeResponses(ctx, Context{
		FieldInterviewID: req.InterviewID,
		FieldEmployeeID:  req.EmployeeID,
		FieldQuestions:   questions.Payload,
		FieldResponses:   req.Responses,
		FieldTimestamp:   timestamp,
	})
	if err != nil {
		return nil, err
	}

	recommendations, err := c.runner.Recommend(ctx, Context{
		FieldEmployeeID: req.EmployeeID,
		FieldAnalysis:   analysis.Payload,
		FieldTimestamp:  timestamp,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("interview pipeline complete",
		zap.Int("questions", len(questions.Payload)),
		zap.Int("recommendations", len(recommendations.Payload.Items)),
	)

	return &InterviewOutcome{
		Questions:       questions,
		Analysis:        analysis,
		Recommendations: recommendations,
	}, nil
}

// RunBatch processes independent interviews concurrently. Stages within one
// interview remain strictly sequential; the limit caps concurrent pipelines.
// The first failing pipeline cancels the rest.
func (c *Coordinator) RunBatch(ctx context.Context, reqs []InterviewRequest, limit int) ([]*InterviewOutcome, error) {
	if limit < 1 {
		limit = 1
	}

	outcomes := make([]*InterviewOutcome, len(reqs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, req := range reqs {
		g.Go(func() error {
			outcome, err := c.Run(gCtx, req)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
