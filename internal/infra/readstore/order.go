package readstore

import (
	"context"
	"encoding/json"
	"time"

	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"
	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderColumns = `
	id, owner_id, items, subtotal_cents, total_cents,
	status, payment_status, external_session_id,
	tracking_number, tracking_url, created_at, shipped_at, delivered_at`

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"

	view, err := scanOrderView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return view, nil
}

func (s *OrderReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2"

	rows, err := s.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		view                     queries.OrderView
		itemsJSON                []byte
		trackingNum, trackingURL pgtype.Text
		createdAt                time.Time
		shippedAt, deliveredAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.OwnerID, &itemsJSON, &view.SubtotalCents, &view.TotalCents,
		&view.Status, &view.PaymentStatus, &view.ExternalSessionID,
		&trackingNum, &trackingURL, &createdAt, &shippedAt, &deliveredAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &view.Items); err != nil {
		return nil, err
	}

	view.TrackingNumber = pgconv.StringPtrFromPgtype(trackingNum)
	view.TrackingURL = pgconv.StringPtrFromPgtype(trackingURL)
	view.CreatedAt = createdAt
	view.ShippedAt = pgconv.TimePtrFromPgtype(shippedAt)
	view.DeliveredAt = pgconv.TimePtrFromPgtype(deliveredAt)

	return &view, nil
}
