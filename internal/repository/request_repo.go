package repository

import (
	"context"
	"fmt"

	"renovation_backend/internal/model"
)

// RequestRepository defines operations for repair-estimate submissions
type RequestRepository interface {
	Create(ctx context.Context, req *model.Request) error
	FindByUser(ctx context.Context, userID int64) ([]model.Request, error)
}

type requestRepository struct {
	db DB

	sqlInsert     string
	sqlSelectUser string
}

// NewRequestRepository creates a new RequestRepository against the given schema
func NewRequestRepository(db DB, schema string) RequestRepository {
	return &requestRepository{
		db: db,
		sqlInsert: fmt.Sprintf(`INSERT INTO %s.requests
            (full_name, email, phone, area, finish_type, estimated_price, message, status, user_id, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`, schema),
		sqlSelectUser: fmt.Sprintf(`SELECT id, full_name, email, phone, area, finish_type, estimated_price, message, status, user_id, created_at
            FROM %s.requests WHERE user_id = $1 ORDER BY created_at DESC`, schema),
	}
}

// Create inserts a new submission and fills in its generated id
func (r *requestRepository) Create(ctx context.Context, req *model.Request) error {
	err := r.db.QueryRow(ctx, r.sqlInsert,
		req.FullName, req.Email, req.Phone, req.Area, req.FinishType,
		req.EstimatedPrice, req.Message, req.Status, req.UserID, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// FindByUser retrieves all submissions for a user, newest first
func (r *requestRepository) FindByUser(ctx context.Context, userID int64) ([]model.Request, error) {
	rows, err := r.db.Query(ctx, r.sqlSelectUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests by user: %w", err)
	}
	defer rows.Close()

	var requests []model.Request
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(
			&req.ID, &req.FullName, &req.Email, &req.Phone, &req.Area, &req.FinishType,
			&req.EstimatedPrice, &req.Message, &req.Status, &req.UserID, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}
	return requests, nil
}
