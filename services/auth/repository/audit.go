package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/taskgate/internal/pkg/models"
)

// AuditRepo persists authentication events to Postgres
type AuditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new audit repository
func NewAuditRepo(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// RecordEvent appends one authentication event to the audit trail
func (r *AuditRepo) RecordEvent(ctx context.Context, event *models.AuthEvent) error {
	query := `
		INSERT INTO auth_events (id, user_id, email, kind, client_ip, created_at)
		VALUES (:id, :user_id, :email, :kind, :client_ip, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("failed to insert auth event: %w", err)
	}

	return nil
}

// EventsByUser returns the most recent auth events for a user, newest first
func (r *AuditRepo) EventsByUser(ctx context.Context, userID string, limit int) ([]models.AuthEvent, error) {
	query := `
		SELECT id, user_id, email, kind, client_ip, created_at
		FROM auth_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var events []models.AuthEvent
	if err := r.db.SelectContext(ctx, &events, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get auth events: %w", err)
	}

	return events, nil
}
