package repository

import (
	"context"
	"encoding/json"
	"time"

	domorder "shopfront/internal/domain/order"
	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// InsertIfAbsent relies on the unique constraint on external_session_id.
// Zero rows affected means an order for this session already exists: the
// duplicate-delivery no-op path.
func (r *OrderRepository) InsertIfAbsent(ctx context.Context, tx db.DBTX, o *domorder.Order) (bool, error) {
	itemsJSON, err := json.Marshal(o.Items())
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode order items", err)
	}

	const query = `
		INSERT INTO orders (
			id, owner_id, items, subtotal_cents, total_cents,
			status, payment_status, external_session_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (external_session_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		o.ID(), o.OwnerID(), itemsJSON, o.SubtotalCents(), o.TotalCents(),
		o.Status().String(), string(o.PaymentStatus()), o.ExternalSessionID(), o.CreatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert order", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domorder.Order, error) {
	const query = `
		SELECT id, owner_id, items, subtotal_cents, total_cents,
		       status, payment_status, external_session_id,
		       tracking_number, tracking_url, created_at, shipped_at, delivered_at
		FROM orders
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	o, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return o, nil
}

func (r *OrderRepository) FindIDBySessionID(ctx context.Context, sessionID string) (uuid.UUID, error) {
	const query = `SELECT id FROM orders WHERE external_session_id = $1`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, sessionID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("order not found for session", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find order by session", err)
	}
	return id, nil
}

// UpdateStatus persists the mutable tail of the order: status, tracking and
// lifecycle timestamps. Everything else is immutable after creation.
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *domorder.Order) error {
	const query = `
		UPDATE orders
		SET status = $2, tracking_number = $3, tracking_url = $4,
		    shipped_at = $5, delivered_at = $6
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query,
		o.ID(), o.Status().String(),
		pgconv.StringPtrToPgtype(o.TrackingNumber()),
		pgconv.StringPtrToPgtype(o.TrackingURL()),
		pgconv.TimePtrToPgtype(o.ShippedAt()),
		pgconv.TimePtrToPgtype(o.DeliveredAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domorder.Order, error) {
	var (
		id, ownerID             uuid.UUID
		itemsJSON               []byte
		subtotalCents           int64
		totalCents              int64
		status, paymentStatus   string
		externalSessionID       string
		trackingNum, trackingURL pgtype.Text
		createdAt               time.Time
		shippedAt, deliveredAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &ownerID, &itemsJSON, &subtotalCents, &totalCents,
		&status, &paymentStatus, &externalSessionID,
		&trackingNum, &trackingURL, &createdAt, &shippedAt, &deliveredAt,
	)
	if err != nil {
		return nil, err
	}

	var items []domorder.Item
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, err
	}

	return domorder.ReconstructOrder(
		id, ownerID, items, subtotalCents, totalCents,
		domorder.Status(status), domorder.PaymentStatus(paymentStatus),
		externalSessionID,
		pgconv.StringPtrFromPgtype(trackingNum),
		pgconv.StringPtrFromPgtype(trackingURL),
		createdAt,
		pgconv.TimePtrFromPgtype(shippedAt),
		pgconv.TimePtrFromPgtype(deliveredAt),
	), nil
}
