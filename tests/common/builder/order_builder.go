//go:build unit || e2e

package builder

import (
	"time"

	domcart "shopfront/internal/domain/cart"
	domorder "shopfront/internal/domain/order"
	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Snapshot          []domcart.Line
	SubtotalCents     int64
	TotalCents        int64
	Status            domorder.Status
	PaymentStatus     domorder.PaymentStatus
	ExternalSessionID string
	CreatedAt         time.Time
}

func NewOrderBuilder() *OrderBuilder {
	productID := uuid.New()
	return &OrderBuilder{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Snapshot: []domcart.Line{
			{ProductID: productID, Name: "Mechanical Keyboard", UnitPriceCents: 4500, Quantity: 2},
		},
		SubtotalCents:     9000,
		TotalCents:        10900,
		Status:            domorder.StatusProcessing,
		PaymentStatus:     domorder.PaymentStatusPaid,
		ExternalSessionID: "cs_test_" + uuid.NewString(),
		CreatedAt:         time.Now(),
	}
}

func (b *OrderBuilder) WithOwnerID(ownerID uuid.UUID) *OrderBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *OrderBuilder) WithSessionID(sessionID string) *OrderBuilder {
	b.ExternalSessionID = sessionID
	return b
}

func (b *OrderBuilder) WithStatus(status domorder.Status) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) WithSnapshot(lines []domcart.Line) *OrderBuilder {
	b.Snapshot = lines
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	return domorder.NewOrder(b.OwnerID, b.Snapshot, b.SubtotalCents, b.TotalCents, b.ExternalSessionID, b.CreatedAt)
}

func (b *OrderBuilder) BuildReconstructed() *domorder.Order {
	items := make([]domorder.Item, len(b.Snapshot))
	for i, l := range b.Snapshot {
		items[i] = domorder.Item{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		}
	}
	return domorder.ReconstructOrder(
		b.ID, b.OwnerID, items, b.SubtotalCents, b.TotalCents,
		b.Status, b.PaymentStatus, b.ExternalSessionID,
		nil, nil, b.CreatedAt, nil, nil,
	)
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	items := make([]queries.OrderItemView, len(b.Snapshot))
	for i, l := range b.Snapshot {
		items[i] = queries.OrderItemView{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		}
	}
	return &queries.OrderView{
		ID:                b.ID,
		OwnerID:           b.OwnerID,
		Items:             items,
		SubtotalCents:     b.SubtotalCents,
		TotalCents:        b.TotalCents,
		Status:            string(b.Status),
		PaymentStatus:     string(b.PaymentStatus),
		ExternalSessionID: b.ExternalSessionID,
		CreatedAt:         b.CreatedAt,
	}
}
