package commands

import (
	"context"
	"log/slog"

	"shopfront/internal/domain/order"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

const EventCheckoutSessionCompleted = "checkout.session.completed"

// Audit outcomes recorded for every inbound webhook event
const (
	OutcomeReconciled = "reconciled"
	OutcomeDuplicate  = "duplicate"
	OutcomeIgnored    = "ignored"
	OutcomeFailed     = "failed"
)

type ReconcileResult struct {
	OrderID    uuid.UUID
	IsReplayed bool
}

type WebhookCommands interface {
	HandleEvent(ctx context.Context, eventType, sessionID string) (*ReconcileResult, error)
}

type webhookUseCaseImpl struct {
	uow     UnitOfWork
	orders  OrderRepository
	carts   CartRepository
	stock   StockRepository
	gateway PaymentGateway
	audit   WebhookAuditRepository
	catalog CatalogCache
	flows   FlowStore
	clock   clock.Clock
}

func NewWebhookCommands(
	uow UnitOfWork,
	orders OrderRepository,
	carts CartRepository,
	stock StockRepository,
	gateway PaymentGateway,
	audit WebhookAuditRepository,
	catalog CatalogCache,
	flows FlowStore,
	clk clock.Clock,
) WebhookCommands {
	return &webhookUseCaseImpl{
		uow:     uow,
		orders:  orders,
		carts:   carts,
		stock:   stock,
		gateway: gateway,
		audit:   audit,
		catalog: catalog,
		flows:   flows,
		clock:   clk,
	}
}

// HandleEvent reconciles an asynchronous payment confirmation into durable
// state: order creation, cart removal and stock decrement in one
// transaction. Delivery is at-least-once; the same session id may arrive any
// number of times and must produce exactly one order and one decrement per
// product. The uniqueness guard is the orders.external_session_id constraint,
// hit through InsertIfAbsent.
func (uc *webhookUseCaseImpl) HandleEvent(ctx context.Context, eventType, sessionID string) (*ReconcileResult, error) {
	if eventType != EventCheckoutSessionCompleted {
		uc.recordAudit(ctx, eventType, sessionID, OutcomeIgnored, nil)
		return nil, nil
	}

	result, err := uc.reconcile(ctx, sessionID)
	if err != nil {
		msg := err.Error()
		uc.recordAudit(ctx, eventType, sessionID, OutcomeFailed, &msg)
		return nil, err
	}

	outcome := OutcomeReconciled
	if result.IsReplayed {
		outcome = OutcomeDuplicate
	}
	uc.recordAudit(ctx, eventType, sessionID, outcome, nil)
	return result, nil
}

func (uc *webhookUseCaseImpl) reconcile(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	// The webhook payload is untrusted: re-fetch the session and derive the
	// authoritative amounts and cart snapshot from the provider.
	session, err := uc.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProvider)
	}

	// The live cart may have been mutated or deleted since the session was
	// created; the metadata snapshot is the only source for order items.
	newOrder, err := order.NewOrder(
		session.Metadata.OwnerID,
		session.Metadata.CartSnapshot,
		session.AmountSubtotalCents,
		session.AmountTotalCents,
		session.SessionID,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	var replayed bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, txErr := uc.orders.InsertIfAbsent(ctx, tx, newOrder)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}
		if !inserted {
			replayed = true
			return nil
		}

		if txErr := uc.carts.DeleteByOwner(ctx, tx, session.Metadata.OwnerID); txErr != nil {
			return errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}

		for _, item := range newOrder.Items() {
			if txErr := uc.stock.DecrementStock(ctx, tx, item.ProductID, item.Quantity); txErr != nil {
				return errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		existingID, findErr := uc.orders.FindIDBySessionID(ctx, sessionID)
		if findErr != nil {
			return nil, errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}
		slog.Info("duplicate webhook delivery ignored", "session_id", sessionID, "order_id", existingID)
		return &ReconcileResult{OrderID: existingID, IsReplayed: true}, nil
	}

	// Stock changed; cached listings are stale until they expire
	uc.catalog.InvalidateLists(ctx)
	// The checkout wizard is done for this owner
	uc.flows.Delete(session.Metadata.OwnerID)

	return &ReconcileResult{OrderID: newOrder.ID(), IsReplayed: false}, nil
}

func (uc *webhookUseCaseImpl) recordAudit(ctx context.Context, eventType, sessionID, outcome string, detail *string) {
	if err := uc.audit.Record(ctx, eventType, sessionID, outcome, detail); err != nil {
		// Audit is diagnostic; a failed write must not fail reconciliation
		slog.Warn("failed to record webhook audit entry", "event_type", eventType, "session_id", sessionID, "error", err)
	}
}
