package queries

import (
	"context"

	"shopfront/internal/infra"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

const DefaultOrderListLimit = 20

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByOwner returns orders for an owner by creation time, descending.
func (q *orderQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*OrderView, error) {
	if limit <= 0 {
		limit = DefaultOrderListLimit
	}
	return q.store.FindByOwner(ctx, ownerID, limit)
}
