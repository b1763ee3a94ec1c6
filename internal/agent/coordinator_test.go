package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-assistant/internal/types"
)

func TestCoordinatorRun(t *testing.T) {
	gen := &fakeGenerator{}
	runner := testRunner(gen)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	coordinator := NewCoordinator(runner, withClock(func() time.Time { return now }))

	outcome, err := coordinator.Run(context.Background(), InterviewRequest{
		EmployeeID:    "emp-1",
		InterviewID:   "int-9",
		InterviewType: "PERFORMANCE_REVIEW",
		Responses:     map[string]string{"1": "I led the migration"},
	})

	require.NoError(t, err)
	require.NotNil(t, outcome.Questions)
	require.NotNil(t, outcome.Analysis)
	require.NotNil(t, outcome.Recommendations)

	// One generation call per stage, in fixed order.
	assert.Equal(t, 3, gen.calls)

	// The run timestamp threads through every stage's metadata.
	assert.Equal(t, now, outcome.Questions.Metadata[MetaGeneratedAt])
	assert.Equal(t, now, outcome.Analysis.Metadata[MetaAnalysisTimestamp])
	assert.Equal(t, now, outcome.Recommendations.Metadata[MetaGeneratedAt])

	// Analysis received the generated questions.
	assert.Equal(t, len(outcome.Questions.Payload), 8)
	assert.Equal(t, 1, outcome.Analysis.Metadata[MetaAnalyzedResponses])
}

func TestCoordinatorRun_AbortsOnFirstFailure(t *testing.T) {
	gen := &fakeGenerator{}
	store := &fakeStore{profiles: map[string]*types.EmployeeProfile{}}
	coordinator := NewCoordinator(NewRunner(gen, store, fakeBench{}))

	outcome, err := coordinator.Run(context.Background(), InterviewRequest{
		EmployeeID:    "emp-missing",
		InterviewID:   "int-9",
		InterviewType: "PROMOTION",
	})

	require.Error(t, err)
	assert.Nil(t, outcome)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	// Question generation failed its lookup; later stages never ran.
	assert.Equal(t, 0, gen.calls)
}

func TestRunBatch(t *testing.T) {
	gen := &fakeGenerator{}
	runner := testRunner(gen)
	coordinator := NewCoordinator(runner)

	reqs := []InterviewRequest{
		{EmployeeID: "emp-1", InterviewID: "int-1", InterviewType: "PERFORMANCE_REVIEW"},
		{EmployeeID: "emp-1", InterviewID: "int-2", InterviewType: "PROMOTION"},
		{EmployeeID: "emp-1", InterviewID: "int-3", InterviewType: "SKILL_ASSESSMENT"},
	}

	outcomes, err := coordinator.RunBatch(context.Background(), reqs, 2)

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for i, outcome := range outcomes {
		require.NotNil(t, outcome, "outcome %d", i)
		assert.Equal(t, reqs[i].InterviewID, outcome.Analysis.Metadata[MetaInterviewID])
	}
}

func TestRunBatch_FailurePropagates(t *testing.T) {
	gen := &fakeGenerator{}
	runner := testRunner(gen)
	coordinator := NewCoordinator(runner)

	reqs := []InterviewRequest{
		{EmployeeID: "emp-1", InterviewID: "int-1", InterviewType: "PERFORMANCE_REVIEW"},
		{EmployeeID: "emp-missing", InterviewID: "int-2", InterviewType: "PROMOTION"},
	}

	outcomes, err := coordinator.RunBatch(context.Background(), reqs, 1)

	require.Error(t, err)
	assert.Nil(t, outcomes)
}

func TestRunBatch_ZeroLimit(t *testing.T) {
	gen := &fakeGenerator{}
	coordinator := NewCoordinator(testRunner(gen))

	outcomes, err := coordinator.RunBatch(context.Background(), []InterviewRequest{
		{EmployeeID: "emp-1", InterviewID: "int-1", InterviewType: "EXIT"},
	}, 0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
}
