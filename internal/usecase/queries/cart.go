package queries

import (
	"context"

	domcart "shopfront/internal/domain/cart"
	"shopfront/internal/infra"
	"shopfront/internal/pkg/config"

	"github.com/google/uuid"
)

type CartReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*CartView, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, ownerID uuid.UUID) (*CartView, *TotalsView, error)
}

type cartQueriesImpl struct {
	store   CartReadStore
	pricing domcart.Pricing
}

func NewCartQueries(store CartReadStore, cfg config.Config) CartQueries {
	return &cartQueriesImpl{
		store: store,
		pricing: domcart.Pricing{
			TaxRate:               cfg.Checkout.TaxRate,
			ShippingFeeCents:      cfg.Checkout.ShippingFeeCents,
			FreeShippingOverCents: cfg.Checkout.FreeShippingOverCents,
		},
	}
}

// GetCart returns an empty cart view when no cart document exists.
func (q *cartQueriesImpl) GetCart(ctx context.Context, ownerID uuid.UUID) (*CartView, *TotalsView, error) {
	view, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			view = &CartView{OwnerID: ownerID, Items: []CartLineView{}}
		} else {
			return nil, nil, err
		}
	}

	lines := make([]domcart.Line, len(view.Items))
	for i, item := range view.Items {
		lines[i] = domcart.Line{
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
		}
	}
	totals := domcart.ComputeTotals(lines, q.pricing)

	return view, &TotalsView{
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		ShippingCents: totals.ShippingCents,
		TotalCents:    totals.TotalCents,
	}, nil
}
