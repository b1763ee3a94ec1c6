package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/interview-assistant/internal/types"
)

// SaveInterviewQuestions stores the generated question set for an interview,
// replacing any previously generated set.
func (db *DB) SaveInterviewQuestions(ctx context.Context, interviewID uuid.UUID, questions []types.GeneratedQuestion) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM interview_questions WHERE interview_id = $1`, interviewID,
	); err != nil {
		return fmt.Errorf("failed to clear previous questions: %w", err)
	}

	for ordinal, q := range questions {
		if _, err := tx.Exec(ctx,
			`INSERT INTO interview_questions
			     (interview_id, ordinal, question_id, question_text, question_type,
			      category, rationale, weight, expected_elements)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			interviewID, ordinal, q.ID, q.Text, q.Type,
			q.Category, q.Rationale, q.Weight, StringArray(q.ExpectedElements),
		); err != nil {
			return fmt.Errorf("failed to save question %d: %w", ordinal, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}
	return nil
}

// GetInterviewQuestions retrieves the generated question set for an interview,
// in generation order. Returns an empty slice when none were generated.
func (db *DB) GetInterviewQuestions(ctx context.Context, interviewID uuid.UUID) ([]types.GeneratedQuestion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT question_id, question_text, question_type, category, rationale, weight, expected_elements
		 FROM interview_questions
		 WHERE interview_id = $1
		 ORDER BY ordinal`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get interview questions: %w", err)
	}
	defer rows.Close()

	var questions []types.GeneratedQuestion
	for rows.Next() {
		var (
			q        types.GeneratedQuestion
			elements StringArray
		)
		if err := rows.Scan(&q.ID, &q.Text, &q.Type, &q.Category, &q.Rationale, &q.Weight, &elements); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.ExpectedElements = elements
		questions = append(questions, q)
	}
	return questions, nil
}

// QuestionBankFilters holds optional filters for browsing the question bank
type QuestionBankFilters struct {
	Type     string
	Category string
	Limit    int
}

// ListQuestionBank retrieves distinct generated questions across interviews,
// most recently generated first. The bank grows as interviews are run.
func (db *DB) ListQuestionBank(ctx context.Context, filters QuestionBankFilters) ([]types.GeneratedQuestion, error) {
	if filters.Limit == 0 {
		filters.Limit = 100
	}

	query := `SELECT DISTINCT ON (question_text)
	              question_id, question_text, question_type, category, rationale, weight, expected_elements
	          FROM interview_questions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Type != "" {
		query += fmt.Sprintf(" AND question_type = $%d", argNum)
		args = append(args, filters.Type)
		argNum++
	}
	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY question_text, created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list question bank: %w", err)
	}
	defer rows.Close()

	var questions []types.GeneratedQuestion
	for rows.Next() {
		var (
			q        types.GeneratedQuestion
			elements StringArray
		)
		if err := rows.Scan(&q.ID, &q.Text, &q.Type, &q.Category, &q.Rationale, &q.Weight, &elements); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.ExpectedElements = elements
		questions = append(questions, q)
	}
	return questions, nil
}
