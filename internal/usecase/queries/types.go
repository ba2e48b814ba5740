package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProductView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	PriceCents int64     `json:"price_cents"`
	Stock      int32     `json:"stock"`
	Status     string    `json:"status"`
	Category   string    `json:"category"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProductFilter struct {
	Category      *string
	MinPriceCents *int64
	MaxPriceCents *int64
	Status        *string
	Limit         int32
}

type CartLineView struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

// CartView with a nil UpdatedAt represents the lazily-created empty cart;
// absence of a cart document is not an error condition.
type CartView struct {
	OwnerID   uuid.UUID      `json:"owner_id"`
	Items     []CartLineView `json:"items"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

type TotalsView struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TotalCents    int64 `json:"total_cents"`
}

type OrderItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

type OrderView struct {
	ID                uuid.UUID       `json:"id"`
	OwnerID           uuid.UUID       `json:"owner_id"`
	Items             []OrderItemView `json:"items"`
	SubtotalCents     int64           `json:"subtotal_cents"`
	TotalCents        int64           `json:"total_cents"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	ExternalSessionID string          `json:"external_session_id"`
	TrackingNumber    *string         `json:"tracking_number,omitempty"`
	TrackingURL       *string         `json:"tracking_url,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
}
