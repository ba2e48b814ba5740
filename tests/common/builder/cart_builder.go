//go:build unit || e2e

package builder

import (
	"time"

	domcart "shopfront/internal/domain/cart"
	"shopfront/internal/domain/product"
	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID         uuid.UUID
	Name       string
	SKU        string
	PriceCents int64
	Stock      int32
	Status     product.Status
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:         uuid.New(),
		Name:       "Mechanical Keyboard",
		SKU:        "KB-001",
		PriceCents: 4500,
		Stock:      10,
		Status:     product.StatusActive,
	}
}

func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	b.PriceCents = cents
	return b
}

func (b *ProductBuilder) WithStock(stock int32) *ProductBuilder {
	b.Stock = stock
	return b
}

func (b *ProductBuilder) WithStatus(status product.Status) *ProductBuilder {
	b.Status = status
	return b
}

func (b *ProductBuilder) AsArchived() *ProductBuilder {
	b.Status = product.StatusArchived
	return b
}

func (b *ProductBuilder) BuildSpec() product.Spec {
	return product.Spec{
		ID:         b.ID,
		Name:       b.Name,
		SKU:        b.SKU,
		PriceCents: b.PriceCents,
		Stock:      b.Stock,
		Status:     b.Status,
	}
}

type CartBuilder struct {
	OwnerID   uuid.UUID
	Lines     []domcart.Line
	UpdatedAt time.Time
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		OwnerID:   uuid.New(),
		UpdatedAt: time.Now(),
	}
}

func (b *CartBuilder) WithOwnerID(ownerID uuid.UUID) *CartBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *CartBuilder) WithLine(productID uuid.UUID, name string, unitPriceCents int64, quantity int32) *CartBuilder {
	b.Lines = append(b.Lines, domcart.Line{
		ProductID:      productID,
		Name:           name,
		UnitPriceCents: unitPriceCents,
		Quantity:       quantity,
	})
	return b
}

func (b *CartBuilder) BuildDomain() *domcart.Cart {
	return domcart.ReconstructCart(b.OwnerID, b.Lines, b.UpdatedAt)
}

func (b *CartBuilder) BuildView() *queries.CartView {
	items := make([]queries.CartLineView, len(b.Lines))
	for i, l := range b.Lines {
		items[i] = queries.CartLineView{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		}
	}
	updatedAt := b.UpdatedAt
	return &queries.CartView{
		OwnerID:   b.OwnerID,
		Items:     items,
		UpdatedAt: &updatedAt,
	}
}
