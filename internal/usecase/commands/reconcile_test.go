//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopfront/internal/domain/cart"
	"shopfront/internal/domain/order"
	"shopfront/internal/infra/db"
	"shopfront/internal/pkg/clock"
	"shopfront/internal/usecase/commands"
	commandsmock "shopfront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUow     *commandsmock.MockUnitOfWork
	mockOrders  *commandsmock.MockOrderRepository
	mockCarts   *commandsmock.MockCartRepository
	mockStock   *commandsmock.MockStockRepository
	mockGateway *commandsmock.MockPaymentGateway
	mockAudit   *commandsmock.MockWebhookAuditRepository
	mockCatalog *commandsmock.MockCatalogCache
	mockFlows   *commandsmock.MockFlowStore
	useCase     commands.WebhookCommands

	ownerID   uuid.UUID
	sessionID string
	snapshot  []cart.Line
}

func (s *WebhookCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = commandsmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockOrders = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.mockCarts = commandsmock.NewMockCartRepository(s.mockCtrl)
	s.mockStock = commandsmock.NewMockStockRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockAudit = commandsmock.NewMockWebhookAuditRepository(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogCache(s.mockCtrl)
	s.mockFlows = commandsmock.NewMockFlowStore(s.mockCtrl)

	s.useCase = commands.NewWebhookCommands(
		s.mockUow,
		s.mockOrders,
		s.mockCarts,
		s.mockStock,
		s.mockGateway,
		s.mockAudit,
		s.mockCatalog,
		s.mockFlows,
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)

	s.ownerID = uuid.New()
	s.sessionID = "cs_" + uuid.NewString()
	s.snapshot = []cart.Line{
		{ProductID: uuid.New(), Name: "Mechanical Keyboard", UnitPriceCents: 4500, Quantity: 2},
		{ProductID: uuid.New(), Name: "USB Cable", UnitPriceCents: 1500, Quantity: 1},
	}
}

func (s *WebhookCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookCommandsSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsTestSuite))
}

func (s *WebhookCommandsTestSuite) sessionDetails() *commands.SessionDetails {
	return &commands.SessionDetails{
		SessionID:           s.sessionID,
		AmountSubtotalCents: 10500,
		AmountTotalCents:    12550,
		Metadata: commands.SessionMetadata{
			OwnerID:      s.ownerID,
			CartSnapshot: s.snapshot,
		},
	}
}

// expectWithin makes the unit of work execute its callback against a nil
// transaction handle; repositories are mocked so the handle is never touched.
func (s *WebhookCommandsTestSuite) expectWithin() {
	s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).Times(1)
}

func (s *WebhookCommandsTestSuite) TestHandleEvent() {
	ctx := context.Background()

	s.Run("first delivery creates the order, clears the cart and decrements stock", func() {
		s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), s.sessionID).
			Return(s.sessionDetails(), nil).Times(1)
		s.expectWithin()

		var inserted *order.Order
		s.mockOrders.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, o *order.Order) (bool, error) {
				inserted = o
				return true, nil
			}).Times(1)
		s.mockCarts.EXPECT().DeleteByOwner(gomock.Any(), gomock.Any(), s.ownerID).
			Return(nil).Times(1)
		s.mockStock.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), s.snapshot[0].ProductID, int32(2)).
			Return(nil).Times(1)
		s.mockStock.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), s.snapshot[1].ProductID, int32(1)).
			Return(nil).Times(1)
		s.mockCatalog.EXPECT().InvalidateLists(gomock.Any()).Times(1)
		s.mockFlows.EXPECT().Delete(s.ownerID).Times(1)
		s.mockAudit.EXPECT().Record(gomock.Any(), commands.EventCheckoutSessionCompleted, s.sessionID, commands.OutcomeReconciled, nil).
			Return(nil).Times(1)

		result, err := s.useCase.HandleEvent(ctx, commands.EventCheckoutSessionCompleted, s.sessionID)

		s.NoError(err)
		s.Require().NotNil(result)
		s.False(result.IsReplayed)
		s.Require().NotNil(inserted)
		s.Equal(inserted.ID(), result.OrderID)
		s.Equal(s.sessionID, inserted.ExternalSessionID())
		s.Equal(int64(10500), inserted.SubtotalCents())
		s.Equal(int64(12550), inserted.TotalCents())
	})

	s.Run("duplicate delivery resolves the existing order without side effects", func() {
		existingID := uuid.New()

		s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), s.sessionID).
			Return(s.sessionDetails(), nil).Times(1)
		s.expectWithin()
		s.mockOrders.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		// No DeleteByOwner, no DecrementStock: the replayed path must not
		// repeat any mutation
		s.mockOrders.EXPECT().FindIDBySessionID(gomock.Any(), s.sessionID).
			Return(existingID, nil).Times(1)
		s.mockAudit.EXPECT().Record(gomock.Any(), commands.EventCheckoutSessionCompleted, s.sessionID, commands.OutcomeDuplicate, nil).
			Return(nil).Times(1)

		result, err := s.useCase.HandleEvent(ctx, commands.EventCheckoutSessionCompleted, s.sessionID)

		s.NoError(err)
		s.Require().NotNil(result)
		s.True(result.IsReplayed)
		s.Equal(existingID, result.OrderID)
	})

	s.Run("other event types are acknowledged without touching the gateway", func() {
		s.mockAudit.EXPECT().Record(gomock.Any(), "payment_intent.created", s.sessionID, commands.OutcomeIgnored, nil).
			Return(nil).Times(1)

		result, err := s.useCase.HandleEvent(ctx, "payment_intent.created", s.sessionID)

		s.NoError(err)
		s.Nil(result)
	})

	s.Run("gateway failure is reported and audited as failed", func() {
		s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), s.sessionID).
			Return(nil, errors.New("connection refused")).Times(1)
		s.mockAudit.EXPECT().Record(gomock.Any(), commands.EventCheckoutSessionCompleted, s.sessionID, commands.OutcomeFailed, gomock.Not(gomock.Nil())).
			Return(nil).Times(1)

		result, err := s.useCase.HandleEvent(ctx, commands.EventCheckoutSessionCompleted, s.sessionID)

		s.ErrorIs(err, commands.ErrPaymentProvider)
		s.Nil(result)
	})

	s.Run("transaction failure rolls up so the provider redelivers", func() {
		s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), s.sessionID).
			Return(s.sessionDetails(), nil).Times(1)
		s.expectWithin()
		s.mockOrders.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)
		s.mockCarts.EXPECT().DeleteByOwner(gomock.Any(), gomock.Any(), s.ownerID).
			Return(errors.New("deadlock detected")).Times(1)
		s.mockAudit.EXPECT().Record(gomock.Any(), commands.EventCheckoutSessionCompleted, s.sessionID, commands.OutcomeFailed, gomock.Not(gomock.Nil())).
			Return(nil).Times(1)

		result, err := s.useCase.HandleEvent(ctx, commands.EventCheckoutSessionCompleted, s.sessionID)

		s.Error(err)
		s.Nil(result)
	})

	s.Run("session with an empty snapshot is rejected", func() {
		details := s.sessionDetails()
		details.Metadata.CartSnapshot = nil

		s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), s.sessionID).
			Return(details, nil).Times(1)
		s.mockAudit.EXPECT().Record(gomock.Any(), commands.EventCheckoutSessionCompleted, s.sessionID, commands.OutcomeFailed, gomock.Not(gomock.Nil())).
			Return(nil).Times(1)

		result, err := s.useCase.HandleEvent(ctx, commands.EventCheckoutSessionCompleted, s.sessionID)

		s.ErrorIs(err, order.ErrNoItems)
		s.Nil(result)
	})

	s.Run("a failed audit write does not fail reconciliation", func() {
		s.mockGateway.EXPECT().RetrieveSession(gomock.Any(), s.sessionID).
			Return(s.sessionDetails(), nil).Times(1)
		s.expectWithin()
		s.mockOrders.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)
		s.mockCarts.EXPECT().DeleteByOwner(gomock.Any(), gomock.Any(), s.ownerID).
			Return(nil).Times(1)
		s.mockStock.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		s.mockCatalog.EXPECT().InvalidateLists(gomock.Any()).Times(1)
		s.mockFlows.EXPECT().Delete(s.ownerID).Times(1)
		s.mockAudit.EXPECT().Record(gomock.Any(), commands.EventCheckoutSessionCompleted, s.sessionID, commands.OutcomeReconciled, nil).
			Return(errors.New("audit table unavailable")).Times(1)

		result, err := s.useCase.HandleEvent(ctx, commands.EventCheckoutSessionCompleted, s.sessionID)

		s.NoError(err)
		s.NotNil(result)
	})
}
