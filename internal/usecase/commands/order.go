package commands

import (
	"context"

	domorder "shopfront/internal/domain/order"
	"shopfront/internal/infra"
	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound           = errs.New("order not found")
	ErrInvalidStatus           = errs.New("invalid order status")
	ErrInvalidStatusTransition = errs.New("invalid order status transition")
)

type UpdateStatusRequest struct {
	Status         string
	TrackingNumber *string
	TrackingURL    *string
}

type OrderCommands interface {
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateStatusRequest) error
}

type orderUseCaseImpl struct {
	orders OrderRepository
	clock  clock.Clock
}

func NewOrderCommands(orders OrderRepository, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{orders: orders, clock: clk}
}

// UpdateStatus applies a lifecycle transition. shippedAt and deliveredAt are
// stamped at transition time; tracking fields are merged when supplied.
func (uc *orderUseCaseImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateStatusRequest) error {
	next, err := domorder.NewStatus(req.Status)
	if err != nil {
		return ErrInvalidStatus
	}

	o, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var tracking *domorder.TrackingInfo
	if req.TrackingNumber != nil || req.TrackingURL != nil {
		tracking = &domorder.TrackingInfo{}
		if req.TrackingNumber != nil {
			tracking.Number = *req.TrackingNumber
		}
		if req.TrackingURL != nil {
			tracking.URL = *req.TrackingURL
		}
	}

	if err := o.Transition(next, tracking, uc.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidStatusTransition)
	}

	if err := uc.orders.UpdateStatus(ctx, o); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
