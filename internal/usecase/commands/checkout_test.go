//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"shopfront/internal/infra"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase/commands"
	"shopfront/tests/common/builder"
	commandsmock "shopfront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCarts   *commandsmock.MockCartRepository
	mockGateway *commandsmock.MockPaymentGateway
	useCase     commands.CheckoutCommands

	ownerID uuid.UUID
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCarts = commandsmock.NewMockCartRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.useCase = commands.NewCheckoutCommands(s.mockCarts, s.mockGateway, config.NewTestConfig())
	s.ownerID = uuid.New()
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) TestCreateSession() {
	ctx := context.Background()
	successURL := "https://shop.example.com/success"
	cancelURL := "https://shop.example.com/cancel"

	s.Run("embeds the cart snapshot and a shipping line item", func() {
		c := builder.NewCartBuilder().
			WithOwnerID(s.ownerID).
			WithLine(uuid.New(), "Mechanical Keyboard", 4500, 2).
			BuildDomain()
		s.mockCarts.EXPECT().FindByOwner(gomock.Any(), s.ownerID).Return(c, nil).Times(1)

		var captured commands.CreateSessionParams
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateSessionParams) (*commands.Session, error) {
				captured = params
				return &commands.Session{SessionID: "cs_123", RedirectURL: "https://pay.example.com/cs_123"}, nil
			}).Times(1)

		result, err := s.useCase.CreateSession(ctx, s.ownerID, successURL, cancelURL)

		s.NoError(err)
		s.Equal("cs_123", result.SessionID)
		s.Equal("https://pay.example.com/cs_123", result.RedirectURL)

		// Subtotal 9000 is under the free-shipping threshold: a shipping
		// line is appended after the cart lines
		s.Require().Len(captured.LineItems, 2)
		s.Equal("Mechanical Keyboard", captured.LineItems[0].Name)
		s.Equal("Shipping", captured.LineItems[1].Name)
		s.Equal(int64(1000), captured.LineItems[1].UnitPriceCents)
		s.Equal(s.ownerID, captured.Metadata.OwnerID)
		s.Require().Len(captured.Metadata.CartSnapshot, 1)
		s.Equal(int32(2), captured.Metadata.CartSnapshot[0].Quantity)
	})

	s.Run("omits the shipping line over the free-shipping threshold", func() {
		c := builder.NewCartBuilder().
			WithOwnerID(s.ownerID).
			WithLine(uuid.New(), "Standing Desk", 13000, 1).
			BuildDomain()
		s.mockCarts.EXPECT().FindByOwner(gomock.Any(), s.ownerID).Return(c, nil).Times(1)

		var captured commands.CreateSessionParams
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateSessionParams) (*commands.Session, error) {
				captured = params
				return &commands.Session{SessionID: "cs_456", RedirectURL: "https://pay.example.com/cs_456"}, nil
			}).Times(1)

		_, err := s.useCase.CreateSession(ctx, s.ownerID, successURL, cancelURL)

		s.NoError(err)
		s.Require().Len(captured.LineItems, 1)
		s.Equal("Standing Desk", captured.LineItems[0].Name)
	})

	s.Run("empty cart never reaches the gateway", func() {
		c := builder.NewCartBuilder().WithOwnerID(s.ownerID).BuildDomain()
		s.mockCarts.EXPECT().FindByOwner(gomock.Any(), s.ownerID).Return(c, nil).Times(1)

		result, err := s.useCase.CreateSession(ctx, s.ownerID, successURL, cancelURL)

		s.ErrorIs(err, commands.ErrEmptyCart)
		s.Nil(result)
	})

	s.Run("missing cart document is treated as an empty cart", func() {
		s.mockCarts.EXPECT().FindByOwner(gomock.Any(), s.ownerID).
			Return(nil, infra.WrapRepoErr("cart not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		result, err := s.useCase.CreateSession(ctx, s.ownerID, successURL, cancelURL)

		s.ErrorIs(err, commands.ErrEmptyCart)
		s.Nil(result)
	})

	s.Run("gateway failure is surfaced as a provider error", func() {
		c := builder.NewCartBuilder().
			WithOwnerID(s.ownerID).
			WithLine(uuid.New(), "Mechanical Keyboard", 4500, 2).
			BuildDomain()
		s.mockCarts.EXPECT().FindByOwner(gomock.Any(), s.ownerID).Return(c, nil).Times(1)
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("503 service unavailable")).Times(1)

		result, err := s.useCase.CreateSession(ctx, s.ownerID, successURL, cancelURL)

		s.ErrorIs(err, commands.ErrPaymentProvider)
		s.Nil(result)
	})
}
