package readstore

import (
	"context"
	"fmt"
	"strings"

	"shopfront/internal/infra"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/pgconv"
	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	const query = `
		SELECT id, name, sku, price_cents, stock, status, category, images, created_at, updated_at
		FROM products
		WHERE id = $1`

	var view queries.ProductView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.SKU, &view.PriceCents, &view.Stock,
		&view.Status, &view.Category, &view.Images, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return &view, nil
}

func (s *ProductReadStore) List(ctx context.Context, filter queries.ProductFilter) ([]*queries.ProductView, error) {
	var (
		conds []string
		args  []any
	)

	addCond := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != nil {
		addCond("category = $%d", *filter.Category)
	}
	if filter.Status != nil {
		addCond("status = $%d", *filter.Status)
	}
	if filter.MinPriceCents != nil {
		addCond("price_cents >= $%d", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		addCond("price_cents <= $%d", *filter.MaxPriceCents)
	}

	query := `
		SELECT id, name, sku, price_cents, stock, status, category, images, created_at, updated_at
		FROM products`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		var view queries.ProductView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.SKU, &view.PriceCents, &view.Stock,
			&view.Status, &view.Category, &view.Images, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return views, nil
}
