package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-assistant/internal/types"
)

const interviewColumns = `id, employee_id, type, status, scheduled_at, completed_at,
	responses, overall_score, created_at, updated_at, deleted_at`

// CreateInterview schedules a new interview for an employee
func (db *DB) CreateInterview(ctx context.Context, req *types.CreateInterviewRequest) (*types.Interview, error) {
	scheduledAt := req.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = time.Now()
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (employee_id, type, status, scheduled_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+interviewColumns,
		req.EmployeeID, req.Type, types.StatusScheduled, scheduledAt,
	)

	interview, err := scanInterview(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return interview, nil
}

// GetInterviewByID retrieves an interview by ID. Soft-deleted records are not returned.
func (db *DB) GetInterviewByID(ctx context.Context, id uuid.UUID) (*types.Interview, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+`
		 FROM interviews WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)

	interview, err := scanInterview(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return interview, nil
}

// InterviewFilters holds optional filters for listing interviews
type InterviewFilters struct {
	EmployeeID string
	Type       string
	Status     string
	From       time.Time
	To         time.Time
	Limit      int
}

// ListInterviews retrieves interviews with optional filters, newest first
func (db *DB) ListInterviews(ctx context.Context, filters InterviewFilters) ([]types.Interview, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE deleted_at IS NULL`
	args := []any{}
	argNum := 1

	if filters.EmployeeID != "" {
		query += fmt.Sprintf(" AND employee_id = $%d", argNum)
		args = append(args, filters.EmployeeID)
		argNum++
	}
	if filters.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argNum)
		args = append(args, filters.Type)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if !filters.From.IsZero() {
		query += fmt.Sprintf(" AND scheduled_at >= $%d", argNum)
		args = append(args, filters.From)
		argNum++
	}
	if !filters.To.IsZero() {
		query += fmt.Sprintf(" AND scheduled_at <= $%d", argNum)
		args = append(args, filters.To)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY scheduled_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []types.Interview
	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, *interview)
	}
	return interviews, nil
}

// UpdateInterviewStatus transitions an interview's lifecycle state
func (db *DB) UpdateInterviewStatus(ctx context.Context, id uuid.UUID, status types.InterviewStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}

// SaveResponses stores the collected interview responses and marks the
// interview in progress.
func (db *DB) SaveResponses(ctx context.Context, id uuid.UUID, responses map[string]string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET responses = $2, status = $3, updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id, ResponseMap(responses), types.StatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to save responses: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}

// CompleteInterview marks an interview completed and records its overall score
func (db *DB) CompleteInterview(ctx context.Context, id uuid.UUID, overallScore float64) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews
		 SET status = $2, overall_score = $3, completed_at = NOW(), updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id, types.StatusCompleted, overallScore,
	)
	if err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}

// DeleteInterview soft-deletes an interview record
func (db *DB) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET deleted_at = NOW(), updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}

// ListCompletedScoresByDepartment returns the overall scores of completed
// interviews for a department, most recent first. Used for benchmark
// computation.
func (db *DB) ListCompletedScoresByDepartment(ctx context.Context, department string, limit int) ([]float64, error) {
	if limit == 0 {
		limit = 200
	}

	rows, err := db.pool.Query(ctx,
		`SELECT i.overall_score
		 FROM interviews i
		 JOIN employees e ON e.id = i.employee_id
		 WHERE e.department = $1
		   AND i.status = $2
		   AND i.overall_score IS NOT NULL
		   AND i.deleted_at IS NULL
		 ORDER BY i.completed_at DESC
		 LIMIT $3`,
		department, types.StatusCompleted, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list department scores: %w", err)
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, nil
}

// scanInterview scans one interview row into the domain record
func scanInterview(row pgx.Row) (*types.Interview, error) {
	var (
		i         types.Interview
		responses ResponseMap
	)

	err := row.Scan(&i.ID, &i.EmployeeID, &i.Type, &i.Status, &i.ScheduledAt, &i.CompletedAt,
		&responses, &i.OverallScore, &i.CreatedAt, &i.UpdatedAt, &i.DeletedAt)
	if err != nil {
		return nil, err
	}

	i.Responses = responses
	return &i, nil
}
