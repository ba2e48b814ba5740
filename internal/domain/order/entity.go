package order

import (
	"errors"
	"time"

	"shopfront/internal/domain/cart"

	"github.com/google/uuid"
)

var (
	ErrNoItems       = errors.New("order must contain at least one item")
	ErrEmptySession  = errors.New("external session id is required")
	ErrInvalidAmount = errors.New("order amounts cannot be negative")
)

type Item struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

type TrackingInfo struct {
	Number string
	URL    string
}

// Order is immutable once created except for status and tracking fields.
// The binding to the payment provider is externalSessionID, unique across
// all orders.
type Order struct {
	id                uuid.UUID
	ownerID           uuid.UUID
	items             []Item
	subtotalCents     int64
	totalCents        int64
	status            Status
	paymentStatus     PaymentStatus
	externalSessionID string
	trackingNumber    *string
	trackingURL       *string
	createdAt         time.Time
	shippedAt         *time.Time
	deliveredAt       *time.Time
}

// NewOrder builds an order from a cart snapshot and provider-derived
// amounts. Items come from the session metadata snapshot, never from the
// live cart.
func NewOrder(ownerID uuid.UUID, snapshot []cart.Line, subtotalCents, totalCents int64, externalSessionID string, now time.Time) (*Order, error) {
	if len(snapshot) == 0 {
		return nil, ErrNoItems
	}
	if externalSessionID == "" {
		return nil, ErrEmptySession
	}
	if subtotalCents < 0 || totalCents < 0 {
		return nil, ErrInvalidAmount
	}

	items := make([]Item, len(snapshot))
	for i, l := range snapshot {
		items[i] = Item{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		}
	}

	return &Order{
		id:                uuid.New(),
		ownerID:           ownerID,
		items:             items,
		subtotalCents:     subtotalCents,
		totalCents:        totalCents,
		status:            StatusProcessing,
		paymentStatus:     PaymentStatusPaid,
		externalSessionID: externalSessionID,
		createdAt:         now,
	}, nil
}

func ReconstructOrder(
	id, ownerID uuid.UUID,
	items []Item,
	subtotalCents, totalCents int64,
	status Status,
	paymentStatus PaymentStatus,
	externalSessionID string,
	trackingNumber, trackingURL *string,
	createdAt time.Time,
	shippedAt, deliveredAt *time.Time,
) *Order {
	return &Order{
		id:                id,
		ownerID:           ownerID,
		items:             items,
		subtotalCents:     subtotalCents,
		totalCents:        totalCents,
		status:            status,
		paymentStatus:     paymentStatus,
		externalSessionID: externalSessionID,
		trackingNumber:    trackingNumber,
		trackingURL:       trackingURL,
		createdAt:         createdAt,
		shippedAt:         shippedAt,
		deliveredAt:       deliveredAt,
	}
}

// Transition moves the status forward, stamping shippedAt/deliveredAt.
// Backward and skipping transitions are rejected.
func (o *Order) Transition(next Status, tracking *TrackingInfo, now time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	o.status = next
	switch next {
	case StatusShipped:
		t := now
		o.shippedAt = &t
	case StatusDelivered:
		t := now
		o.deliveredAt = &t
	}

	if tracking != nil {
		if tracking.Number != "" {
			n := tracking.Number
			o.trackingNumber = &n
		}
		if tracking.URL != "" {
			u := tracking.URL
			o.trackingURL = &u
		}
	}
	return nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) OwnerID() uuid.UUID           { return o.ownerID }
func (o *Order) Items() []Item                { return o.items }
func (o *Order) SubtotalCents() int64         { return o.subtotalCents }
func (o *Order) TotalCents() int64            { return o.totalCents }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) ExternalSessionID() string    { return o.externalSessionID }
func (o *Order) TrackingNumber() *string      { return o.trackingNumber }
func (o *Order) TrackingURL() *string         { return o.trackingURL }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) ShippedAt() *time.Time        { return o.shippedAt }
func (o *Order) DeliveredAt() *time.Time      { return o.deliveredAt }
