package commands

import (
	"context"

	"shopfront/internal/domain/cart"
	"shopfront/internal/domain/checkout"
	"shopfront/internal/domain/order"
	"shopfront/internal/domain/product"
	"shopfront/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a single database transaction. The reconciler
// depends on this: order insert, cart delete and stock decrements either all
// commit or all roll back, so provider redelivery retries the whole unit.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type ProductReader interface {
	SpecByID(ctx context.Context, id uuid.UUID) (*product.Spec, error)
}

type CartRepository interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	DeleteByOwner(ctx context.Context, tx db.DBTX, ownerID uuid.UUID) error
}

type OrderRepository interface {
	// InsertIfAbsent persists the order unless one already exists for the
	// same external session id. Returns false on the duplicate-delivery path.
	InsertIfAbsent(ctx context.Context, tx db.DBTX, o *order.Order) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindIDBySessionID(ctx context.Context, sessionID string) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, o *order.Order) error
}

type StockRepository interface {
	// DecrementStock atomically subtracts quantity, floored at zero.
	DecrementStock(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int32) error
}

// WebhookAuditRepository records every inbound payment event with its
// outcome, so reconciliation failures are diagnosable without replaying the
// provider's private event log.
type WebhookAuditRepository interface {
	Record(ctx context.Context, eventType, sessionID, outcome string, detail *string) error
}

type SessionLineItem struct {
	Name           string
	UnitPriceCents int64
	Quantity       int32
}

type SessionMetadata struct {
	OwnerID      uuid.UUID   `json:"owner_id"`
	CartSnapshot []cart.Line `json:"cart_snapshot"`
}

type CreateSessionParams struct {
	LineItems  []SessionLineItem
	SuccessURL string
	CancelURL  string
	Metadata   SessionMetadata
}

type Session struct {
	SessionID   string
	RedirectURL string
}

type SessionDetails struct {
	SessionID           string
	AmountSubtotalCents int64
	AmountTotalCents    int64
	Metadata            SessionMetadata
}

// PaymentGateway is the boundary to the external payment provider. Sessions
// are provider-owned; nothing is persisted locally until the webhook lands.
type PaymentGateway interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionDetails, error)
}

// FlowStore keeps the per-owner checkout wizard state. The wizard is
// ephemeral UI state with one active step per owner.
type FlowStore interface {
	Get(ownerID uuid.UUID) *checkout.Flow
	Save(ownerID uuid.UUID, f *checkout.Flow)
	Delete(ownerID uuid.UUID)
}

type AddressLookup interface {
	Lookup(ctx context.Context, postalCode string) (*checkout.PostalLookupResult, error)
}

// CatalogCache lets write-side commands drop cached product listings after a
// stock mutation. Invalidation is best-effort; listings also expire by TTL.
type CatalogCache interface {
	InvalidateLists(ctx context.Context)
}
