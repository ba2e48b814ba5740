package readstore

import (
	"context"
	"encoding/json"
	"time"

	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"
	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (s *CartReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.CartView, error) {
	const query = `
		SELECT items, updated_at
		FROM carts
		WHERE owner_id = $1`

	var itemsJSON []byte
	var updatedAt time.Time
	err := s.db.QueryRow(ctx, query, ownerID).Scan(&itemsJSON, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	items := []queries.CartLineView{}
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart items", err)
	}

	return &queries.CartView{
		OwnerID:   ownerID,
		Items:     items,
		UpdatedAt: &updatedAt,
	}, nil
}
