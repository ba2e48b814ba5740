package repository

import (
	"context"

	"shopfront/internal/domain/product"
	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

func (r *ProductRepository) SpecByID(ctx context.Context, id uuid.UUID) (*product.Spec, error) {
	const query = `
		SELECT id, name, sku, price_cents, stock, status
		FROM products
		WHERE id = $1`

	var spec product.Spec
	var status string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&spec.ID, &spec.Name, &spec.SKU, &spec.PriceCents, &spec.Stock, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	spec.Status = product.Status(status)

	return &spec, nil
}

// DecrementStock subtracts quantity atomically, floored at zero. Concurrent
// settlements for the same product must not read-modify-write.
func (r *ProductRepository) DecrementStock(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int32) error {
	const query = `
		UPDATE products
		SET stock = GREATEST(stock - $2, 0), updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, query, productID, quantity); err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	return nil
}
