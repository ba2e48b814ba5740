package response

import (
	"time"

	"shopfront/internal/domain/cart"
	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
}

type TotalsResponse struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	ShippingCents int64 `json:"shippingCents"`
	TotalCents    int64 `json:"totalCents"`
}

type CartResponse struct {
	OwnerID   uuid.UUID          `json:"ownerId"`
	Items     []CartLineResponse `json:"items"`
	Totals    *TotalsResponse    `json:"totals,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

func FromCartView(view *queries.CartView, totals *queries.TotalsView) *CartResponse {
	items := make([]CartLineResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = CartLineResponse{
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
		}
	}
	return &CartResponse{
		OwnerID:   view.OwnerID,
		Items:     items,
		Totals:    fromTotalsView(totals),
		UpdatedAt: view.UpdatedAt,
	}
}

// FromCart renders the mutation result without totals; clients re-fetch the
// cart view when they need the price breakdown.
func FromCart(c *cart.Cart) *CartResponse {
	lines := c.Lines()
	items := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		items[i] = CartLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		}
	}
	updatedAt := c.UpdatedAt()
	return &CartResponse{
		OwnerID:   c.OwnerID(),
		Items:     items,
		UpdatedAt: &updatedAt,
	}
}

func fromTotalsView(totals *queries.TotalsView) *TotalsResponse {
	if totals == nil {
		return nil
	}
	return &TotalsResponse{
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		ShippingCents: totals.ShippingCents,
		TotalCents:    totals.TotalCents,
	}
}
