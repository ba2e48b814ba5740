package response

import (
	"time"

	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	OwnerID           uuid.UUID           `json:"ownerId"`
	Items             []OrderItemResponse `json:"items"`
	SubtotalCents     int64               `json:"subtotalCents"`
	TotalCents        int64               `json:"totalCents"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"paymentStatus"`
	ExternalSessionID string              `json:"externalSessionId"`
	TrackingNumber    *string             `json:"trackingNumber,omitempty"`
	TrackingURL       *string             `json:"trackingUrl,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	ShippedAt         *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt       *time.Time          `json:"deliveredAt,omitempty"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromOrderViews(rms []*queries.OrderView) []*OrderResponse {
	resp := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromOrderView(rm)
	}
	return resp
}
