package commands

import (
	"context"
	"errors"

	domcart "shopfront/internal/domain/cart"
	"shopfront/internal/infra"
	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrOutOfStock      = errs.New("insufficient stock")
	ErrCartNotFound    = errs.New("cart not found")
	ErrInvalidQuantity = errs.New("quantity must be positive")
)

type CartCommands interface {
	AddItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) (*domcart.Cart, error)
	UpdateItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) (*domcart.Cart, error)
	RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) (*domcart.Cart, error)
}

type cartUseCaseImpl struct {
	products ProductReader
	carts    CartRepository
	clock    clock.Clock
}

func NewCartCommands(products ProductReader, carts CartRepository, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{
		products: products,
		carts:    carts,
		clock:    clk,
	}
}

// AddItem validates stock at mutation time and snapshots the product price
// into the line. The cart document is created lazily on first add.
func (uc *cartUseCaseImpl) AddItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) (*domcart.Cart, error) {
	spec, err := uc.products.SpecByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c, err := uc.loadOrCreateCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := c.AddItem(*spec, quantity, uc.clock.Now()); err != nil {
		return nil, mapCartDomainErr(err)
	}

	if err := uc.carts.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

// UpdateItem re-validates against current stock and overwrites the line
// quantity. The price snapshot is preserved, not refreshed. A quantity of
// zero or less removes the line.
func (uc *cartUseCaseImpl) UpdateItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) (*domcart.Cart, error) {
	if quantity <= 0 {
		return uc.RemoveItem(ctx, ownerID, productID)
	}

	spec, err := uc.products.SpecByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c, err := uc.carts.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.UpdateItem(*spec, quantity, uc.clock.Now()); err != nil {
		return nil, mapCartDomainErr(err)
	}

	if err := uc.carts.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

// RemoveItem filters out the line. Removing a line that is not in the cart
// returns the unchanged cart; a missing cart document is an error.
func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) (*domcart.Cart, error) {
	c, err := uc.carts.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.RemoveItem(productID, uc.clock.Now())

	if err := uc.carts.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (uc *cartUseCaseImpl) loadOrCreateCart(ctx context.Context, ownerID uuid.UUID) (*domcart.Cart, error) {
	c, err := uc.carts.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return domcart.NewCart(ownerID), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

func mapCartDomainErr(err error) error {
	switch {
	case errors.Is(err, domcart.ErrOutOfStock):
		return ErrOutOfStock
	case errors.Is(err, domcart.ErrProductNotSellable):
		return ErrProductNotFound
	case errors.Is(err, domcart.ErrInvalidQuantity):
		return ErrInvalidQuantity
	default:
		return err
	}
}
