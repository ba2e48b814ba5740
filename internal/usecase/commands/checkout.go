package commands

import (
	"context"

	domcart "shopfront/internal/domain/cart"
	"shopfront/internal/infra"
	"shopfront/internal/pkg/config"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errs.New("cart is empty")
	ErrPaymentProvider = errs.New("payment provider request failed")
)

type CreateSessionResult struct {
	SessionID   string
	RedirectURL string
}

type CheckoutCommands interface {
	CreateSession(ctx context.Context, ownerID uuid.UUID, successURL, cancelURL string) (*CreateSessionResult, error)
}

type checkoutUseCaseImpl struct {
	carts   CartRepository
	gateway PaymentGateway
	pricing domcart.Pricing
}

func NewCheckoutCommands(carts CartRepository, gateway PaymentGateway, cfg config.Config) CheckoutCommands {
	return &checkoutUseCaseImpl{
		carts:   carts,
		gateway: gateway,
		pricing: domcart.Pricing{
			TaxRate:               cfg.Checkout.TaxRate,
			ShippingFeeCents:      cfg.Checkout.ShippingFeeCents,
			FreeShippingOverCents: cfg.Checkout.FreeShippingOverCents,
		},
	}
}

// CreateSession snapshots the cart and requests a hosted session from the
// payment provider. Nothing is persisted locally; the session stays
// provider-owned until the webhook arrives. The snapshot embedded in the
// session metadata is the only cart state the reconciler will ever trust.
func (uc *checkoutUseCaseImpl) CreateSession(ctx context.Context, ownerID uuid.UUID, successURL, cancelURL string) (*CreateSessionResult, error) {
	c, err := uc.carts.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	snapshot := c.Snapshot()
	totals := domcart.ComputeTotals(snapshot, uc.pricing)

	lineItems := make([]SessionLineItem, 0, len(snapshot)+1)
	for _, l := range snapshot {
		lineItems = append(lineItems, SessionLineItem{
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	if totals.ShippingCents > 0 {
		lineItems = append(lineItems, SessionLineItem{
			Name:           "Shipping",
			UnitPriceCents: totals.ShippingCents,
			Quantity:       1,
		})
	}

	session, err := uc.gateway.CreateSession(ctx, CreateSessionParams{
		LineItems:  lineItems,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Metadata: SessionMetadata{
			OwnerID:      ownerID,
			CartSnapshot: snapshot,
		},
	})
	if err != nil {
		// No synchronous retry; the customer fails checkout and may retry
		return nil, errs.Mark(err, ErrPaymentProvider)
	}

	return &CreateSessionResult{
		SessionID:   session.SessionID,
		RedirectURL: session.RedirectURL,
	}, nil
}
