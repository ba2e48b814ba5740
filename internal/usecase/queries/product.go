package queries

import (
	"context"
	"fmt"
	"log/slog"

	"shopfront/internal/infra"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

const DefaultProductListLimit = 50

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filter ProductFilter) ([]*ProductView, error)
}

// ProductCache is a read-through cache over product listings. A miss or a
// cache failure falls back to the read store.
type ProductCache interface {
	GetList(ctx context.Context, key string) ([]*ProductView, bool)
	SetList(ctx context.Context, key string, products []*ProductView)
	InvalidateLists(ctx context.Context)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filter ProductFilter) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
	cache ProductCache
}

func NewProductQueries(store ProductReadStore, cache ProductCache) ProductQueries {
	return &productQueriesImpl{store: store, cache: cache}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *productQueriesImpl) List(ctx context.Context, filter ProductFilter) ([]*ProductView, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultProductListLimit
	}

	key := cacheKey(filter)
	if cached, ok := q.cache.GetList(ctx, key); ok {
		return cached, nil
	}

	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	q.cache.SetList(ctx, key, views)
	slog.Debug("product list cache filled", "key", key, "count", len(views))
	return views, nil
}

func cacheKey(f ProductFilter) string {
	category, status := "", ""
	var minPrice, maxPrice int64 = -1, -1
	if f.Category != nil {
		category = *f.Category
	}
	if f.Status != nil {
		status = *f.Status
	}
	if f.MinPriceCents != nil {
		minPrice = *f.MinPriceCents
	}
	if f.MaxPriceCents != nil {
		maxPrice = *f.MaxPriceCents
	}
	return fmt.Sprintf("products:%s:%s:%d:%d:%d", category, status, minPrice, maxPrice, f.Limit)
}
