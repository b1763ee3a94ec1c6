package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-assistant/internal/types"
)

// Evaluation is a persisted analysis result for one interview
type Evaluation struct {
	ID          uuid.UUID             `json:"id"`
	InterviewID uuid.UUID             `json:"interview_id"`
	EmployeeID  string                `json:"employee_id"`
	Analysis    *types.AnalysisResult `json:"analysis"`
	Confidence  float64               `json:"confidence"`
	CreatedAt   time.Time             `json:"created_at"`
}

// SaveEvaluation stores the analysis result for an interview. Re-analyzing an
// interview replaces its previous evaluation.
func (db *DB) SaveEvaluation(ctx context.Context, interviewID uuid.UUID, employeeID string, analysis *types.AnalysisResult, confidence float64) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO evaluations (interview_id, employee_id, analysis, confidence)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (interview_id) DO UPDATE SET
		     employee_id = $2, analysis = $3, confidence = $4, created_at = NOW()`,
		interviewID, employeeID, payload, confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to save evaluation: %w", err)
	}
	return nil
}

// GetEvaluation retrieves the stored analysis for an interview
func (db *DB) GetEvaluation(ctx context.Context, interviewID uuid.UUID) (*Evaluation, error) {
	var (
		e       Evaluation
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, interview_id, employee_id, analysis, confidence, created_at
		 FROM evaluations WHERE interview_id = $1`,
		interviewID,
	).Scan(&e.ID, &e.InterviewID, &e.EmployeeID, &payload, &e.Confidence, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	if len(payload) > 0 {
		var analysis types.AnalysisResult
		if err := json.Unmarshal(payload, &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		e.Analysis = &analysis
	}
	return &e, nil
}

// ListEvaluationsByEmployee retrieves an employee's evaluations, oldest first.
// The time-ordered sequence feeds skill trend computation.
func (db *DB) ListEvaluationsByEmployee(ctx context.Context, employeeID string, limit int) ([]Evaluation, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, interview_id, employee_id, analysis, confidence, created_at
		 FROM evaluations WHERE employee_id = $1
		 ORDER BY created_at ASC LIMIT $2`,
		employeeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []Evaluation
	for rows.Next() {
		var (
			e       Evaluation
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.InterviewID, &e.EmployeeID, &payload, &e.Confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if len(payload) > 0 {
			var analysis types.AnalysisResult
			if err := json.Unmarshal(payload, &analysis); err != nil {
				return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
			}
			e.Analysis = &analysis
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, nil
}

// RecommendationRecord is a persisted recommendation set for one interview
type RecommendationRecord struct {
	ID          uuid.UUID                `json:"id"`
	InterviewID uuid.UUID                `json:"interview_id"`
	EmployeeID  string                   `json:"employee_id"`
	Set         *types.RecommendationSet `json:"recommendations"`
	Quality     float64                  `json:"quality"`
	CreatedAt   time.Time                `json:"created_at"`
}

// SaveRecommendations stores the recommendation set for an interview,
// replacing any previous set.
func (db *DB) SaveRecommendations(ctx context.Context, interviewID uuid.UUID, employeeID string, set *types.RecommendationSet, quality float64) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO recommendations (interview_id, employee_id, recommendations, quality)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (interview_id) DO UPDATE SET
		     employee_id = $2, recommendations = $3, quality = $4, created_at = NOW()`,
		interviewID, employeeID, payload, quality,
	)
	if err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}
	return nil
}

// GetRecommendations retrieves the stored recommendation set for an interview
func (db *DB) GetRecommendations(ctx context.Context, interviewID uuid.UUID) (*RecommendationRecord, error) {
	var (
		r       RecommendationRecord
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, interview_id, employee_id, recommendations, quality, created_at
		 FROM recommendations WHERE interview_id = $1`,
		interviewID,
	).Scan(&r.ID, &r.InterviewID, &r.EmployeeID, &payload, &r.Quality, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}

	if len(payload) > 0 {
		var set types.RecommendationSet
		if err := json.Unmarshal(payload, &set); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
		}
		r.Set = &set
	}
	return &r, nil
}
