package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// CreateApplication stores a completed application with a single insert.
// No idempotency key is attached; a caller retry stores a new record.
func (db *DB) CreateApplication(ctx context.Context, role types.Role, answers []types.Answer) (*types.StoredApplication, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}

	app := &types.StoredApplication{
		Role:    role,
		Answers: answers,
		Status:  types.StatusPending,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications (role, answers, status)
		 VALUES ($1, $2, 'pending')
		 RETURNING id, created_at, updated_at`,
		role, answersJSON,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// GetApplication retrieves an application by ID. Returns nil if not found.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.StoredApplication, error) {
	var app types.StoredApplication
	var answersJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, role, answers, status, score, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&app.ID, &app.Role, &answersJSON, &app.Status, &app.Score, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if err := json.Unmarshal(answersJSON, &app.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}
	return &app, nil
}

// ListApplicationsOptions contains filters for listing applications
type ListApplicationsOptions struct {
	Role   *types.Role              // Filter by role
	Status *types.ApplicationStatus // Filter by status
	Limit  int                      // Pagination limit
	Offset int                      // Pagination offset
}

// ListApplications lists applications newest-first with optional filters and
// pagination, returning the page and the total matching count.
func (db *DB) ListApplications(ctx context.Context, opts ListApplicationsOptions) ([]types.StoredApplication, int, error) {
	// Build WHERE clause dynamically
	var conditions []string
	var args []interface{}
	argIndex := 1

	if opts.Role != nil && *opts.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIndex))
		args = append(args, *opts.Role)
		argIndex++
	}

	if opts.Status != nil && *opts.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *opts.Status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM applications %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(
		`SELECT id, role, answers, status, score, created_at, updated_at
		 FROM applications %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)
	args = append(args, limit, offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.StoredApplication
	for rows.Next() {
		var app types.StoredApplication
		var answersJSON []byte
		if err := rows.Scan(&app.ID, &app.Role, &answersJSON, &app.Status,
			&app.Score, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(answersJSON, &app.Answers); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, total, nil
}

// ListAllApplications returns every matching application newest-first,
// without pagination. Used by analytics and export, which scan the full set.
func (db *DB) ListAllApplications(ctx context.Context, role *types.Role, status *types.ApplicationStatus) ([]types.StoredApplication, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if role != nil && *role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIndex))
		args = append(args, *role)
		argIndex++
	}
	if status != nil && *status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(
		`SELECT id, role, answers, status, score, created_at, updated_at
		 FROM applications %s
		 ORDER BY created_at DESC`,
		whereClause,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.StoredApplication
	for rows.Next() {
		var app types.StoredApplication
		var answersJSON []byte
		if err := rows.Scan(&app.ID, &app.Role, &answersJSON, &app.Status,
			&app.Score, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answersJSON, &app.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateStatus sets an application's review status.
// Returns false if no application with that ID exists.
func (db *DB) UpdateStatus(ctx context.Context, id uuid.UUID, status types.ApplicationStatus) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateScore persists the overall AI score for an application.
// Returns false if no application with that ID exists.
func (db *DB) UpdateScore(ctx context.Context, id uuid.UUID, score int) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET score = $1, updated_at = NOW() WHERE id = $2`,
		score, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update score: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
