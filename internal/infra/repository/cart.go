package repository

import (
	"context"
	"encoding/json"
	"time"

	domcart "shopfront/internal/domain/cart"
	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

func (r *CartRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*domcart.Cart, error) {
	const query = `
		SELECT items, updated_at
		FROM carts
		WHERE owner_id = $1`

	var itemsJSON []byte
	var updatedAt time.Time
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&itemsJSON, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	var lines []domcart.Line
	if err := json.Unmarshal(itemsJSON, &lines); err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart items", err)
	}

	return domcart.ReconstructCart(ownerID, lines, updatedAt), nil
}

// Save writes the whole cart document. Concurrent mutations by the same
// owner (two browser tabs) are a last-write-wins race on the document;
// there is no optimistic-concurrency token.
func (r *CartRepository) Save(ctx context.Context, c *domcart.Cart) error {
	itemsJSON, err := json.Marshal(c.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart items", err)
	}

	const query = `
		INSERT INTO carts (owner_id, items, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE
		SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.Exec(ctx, query, c.OwnerID(), itemsJSON, c.UpdatedAt()); err != nil {
		return infra.WrapRepoErr("failed to save cart", err)
	}
	return nil
}

// DeleteByOwner clears the live cart after its snapshot became an order.
// Deleting an already-absent cart is a no-op.
func (r *CartRepository) DeleteByOwner(ctx context.Context, tx db.DBTX, ownerID uuid.UUID) error {
	const query = `DELETE FROM carts WHERE owner_id = $1`

	if _, err := tx.Exec(ctx, query, ownerID); err != nil {
		return infra.WrapRepoErr("failed to delete cart", err)
	}
	return nil
}
