package repository

import (
	"context"

	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"
)

type WebhookEventRepository struct {
	db db.DBTX
}

func NewWebhookEventRepository(dbtx db.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{db: dbtx}
}

// Record appends one audit row per inbound payment event, success or not.
func (r *WebhookEventRepository) Record(ctx context.Context, eventType, sessionID, outcome string, detail *string) error {
	const query = `
		INSERT INTO webhook_events (event_type, session_id, outcome, detail)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, eventType, sessionID, outcome, pgconv.StringPtrToPgtype(detail)); err != nil {
		return infra.WrapRepoErr("failed to record webhook event", err)
	}
	return nil
}
