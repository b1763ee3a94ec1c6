package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-assistant/internal/types"
)

const employeeColumns = `id, name, email, position, department, level, experience_years,
	skills, performance_ratings, career_goals, manager_id, hire_date,
	created_at, updated_at, deleted_at`

// CreateEmployee inserts a new employee record and returns it
func (db *DB) CreateEmployee(ctx context.Context, req *types.CreateEmployeeRequest) (*types.Employee, error) {
	id := fmt.Sprintf("emp_%s", uuid.New().String())

	row := db.pool.QueryRow(ctx,
		`INSERT INTO employees (id, name, email, position, department, level, experience_years,
		                        skills, career_goals, manager_id, hire_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NOW())
		 RETURNING `+employeeColumns,
		id, req.Name, req.Email, req.Position, req.Department, req.Level, req.ExperienceYears,
		StringArray(req.Skills), StringArray(req.CareerGoals), req.ManagerID,
	)

	employee, err := scanEmployee(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// GetEmployeeByID retrieves an employee by ID. Soft-deleted records are not returned.
func (db *DB) GetEmployeeByID(ctx context.Context, id string) (*types.Employee, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+`
		 FROM employees WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)

	employee, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// GetEmployeeByEmail retrieves an employee by email address
func (db *DB) GetEmployeeByEmail(ctx context.Context, email string) (*types.Employee, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+`
		 FROM employees WHERE email = $1 AND deleted_at IS NULL`,
		email,
	)

	employee, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return employee, nil
}

// EmployeeFilters holds optional filters for listing employees
type EmployeeFilters struct {
	Department string
	Level      string
	ManagerID  string
	Limit      int
}

// ListEmployees retrieves employees with optional filters, newest first
func (db *DB) ListEmployees(ctx context.Context, filters EmployeeFilters) ([]types.Employee, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL`
	args := []any{}
	argNum := 1

	if filters.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", argNum)
		args = append(args, filters.Department)
		argNum++
	}
	if filters.Level != "" {
		query += fmt.Sprintf(" AND level = $%d", argNum)
		args = append(args, filters.Level)
		argNum++
	}
	if filters.ManagerID != "" {
		query += fmt.Sprintf(" AND manager_id = $%d", argNum)
		args = append(args, filters.ManagerID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []types.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *employee)
	}
	return employees, nil
}

// UpdateEmployee replaces the mutable fields of an employee record
func (db *DB) UpdateEmployee(ctx context.Context, id string, req *types.CreateEmployeeRequest) (*types.Employee, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE employees
		 SET name = $2, email = $3, position = $4, department = $5, level = $6,
		     experience_years = $7, skills = $8, career_goals = $9,
		     manager_id = NULLIF($10, ''), updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+employeeColumns,
		id, req.Name, req.Email, req.Position, req.Department, req.Level,
		req.ExperienceYears, StringArray(req.Skills), StringArray(req.CareerGoals), req.ManagerID,
	)

	employee, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// AddPerformanceRating appends a rating to the employee's history
func (db *DB) AddPerformanceRating(ctx context.Context, id string, rating types.PerformanceRating) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE employees
		 SET performance_ratings = performance_ratings || $2::jsonb, updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id, RatingList{rating},
	)
	if err != nil {
		return fmt.Errorf("failed to add performance rating: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %s", id)
	}
	return nil
}

// DeleteEmployee soft-deletes an employee record. The row remains for
// historical interviews and evaluations that reference it.
func (db *DB) DeleteEmployee(ctx context.Context, id string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %s", id)
	}
	return nil
}

// scanEmployee scans one employee row into the domain record
func scanEmployee(row pgx.Row) (*types.Employee, error) {
	var (
		e           types.Employee
		skills      StringArray
		ratings     RatingList
		careerGoals StringArray
		managerID   *string
	)

	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.Level,
		&e.ExperienceYears, &skills, &ratings, &careerGoals, &managerID,
		&e.HireDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt)
	if err != nil {
		return nil, err
	}

	e.Skills = skills
	e.PerformanceRatings = ratings
	e.CareerGoals = careerGoals
	if managerID != nil {
		e.ManagerID = *managerID
	}
	return &e, nil
}
