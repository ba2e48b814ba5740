//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shopfront/internal/handler/api"
	"shopfront/internal/handler/middleware"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"
	"shopfront/tests/common/builder"
	"shopfront/tests/common/httptest"
	commandsmock "shopfront/tests/mock/commands"
	queriesmock "shopfront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler

	ownerID uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.ownerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("owner_id", s.ownerID)
		c.Set("role", middleware.RoleCustomer)
		c.Next()
	}

	s.router.GET("/cart", authMiddleware, s.handler.GetCart)
	s.router.POST("/cart/items", authMiddleware, s.handler.AddItem)
	s.router.PUT("/cart/items/:productId", authMiddleware, s.handler.UpdateItem)
	s.router.DELETE("/cart/items/:productId", authMiddleware, s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

// ================================================================================
// TestGetCart
// ================================================================================

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: returns cart view with totals", func() {
		cartBuilder := builder.NewCartBuilder().
			WithOwnerID(s.ownerID).
			WithLine(uuid.New(), "Mechanical Keyboard", 4500, 2)
		view := cartBuilder.BuildView()
		totals := &queries.TotalsView{SubtotalCents: 9000, TaxCents: 900, ShippingCents: 1000, TotalCents: 10900}

		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.ownerID).
			Return(view, totals, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.ownerID, body.OwnerID)
		s.Require().Len(body.Items, 1)
		s.Equal(int32(2), body.Items[0].Quantity)
		s.Require().NotNil(body.Totals)
		s.Equal(int64(10900), body.Totals.TotalCents)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	productID := uuid.New()
	reqBody := map[string]any{"product_id": productID.String(), "quantity": 2}

	s.Run("success: returns 200 with the updated cart", func() {
		updated := builder.NewCartBuilder().
			WithOwnerID(s.ownerID).
			WithLine(productID, "Mechanical Keyboard", 4500, 2).
			BuildDomain()
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.ownerID, productID, int32(2)).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(productID, body.Items[0].ProductID)
		s.Nil(body.Totals)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"product_id": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"product not found", commands.ErrProductNotFound, http.StatusNotFound, "Product not found"},
			{"out of stock", commands.ErrOutOfStock, http.StatusConflict, "Insufficient stock"},
			{"invalid quantity", commands.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be positive"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), s.ownerID, productID, int32(2)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestUpdateItem
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateItem() {
	productID := uuid.New()
	url := "/cart/items/" + productID.String()

	s.Run("success: overwrites the quantity", func() {
		updated := builder.NewCartBuilder().
			WithOwnerID(s.ownerID).
			WithLine(productID, "Mechanical Keyboard", 4500, 5).
			BuildDomain()
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), s.ownerID, productID, int32(5)).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 5}, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(int32(5), body.Items[0].Quantity)
	})

	s.Run("error: 400 Bad Request on malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/not-a-uuid", map[string]any{"quantity": 5}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID format")
	})

	s.Run("error: 404 Not Found when no cart document exists", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), s.ownerID, productID, int32(5)).
			Return(nil, commands.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 5}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

// ================================================================================
// TestRemoveItem
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveItem() {
	productID := uuid.New()
	url := "/cart/items/" + productID.String()

	s.Run("success: returns the cart without the removed line", func() {
		updated := builder.NewCartBuilder().WithOwnerID(s.ownerID).BuildDomain()
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.ownerID, productID).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("error: 404 Not Found when no cart document exists", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.ownerID, productID).
			Return(nil, commands.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}
