//go:build unit

package api_test

import (
	"context"
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

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler

	ownerID uuid.UUID
	role    string
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.ownerID = uuid.New()
	s.role = middleware.RoleCustomer

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("owner_id", s.ownerID)
		c.Set("role", s.role)
		c.Next()
	}
	adminMiddleware := func(c *gin.Context) {
		if s.role != middleware.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}

	s.router.GET("/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.PUT("/orders/:id/status", authMiddleware, adminMiddleware, s.handler.UpdateStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("success: owner reads their own order", func() {
		view := builder.NewOrderBuilder().WithOwnerID(s.ownerID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("processing", body.Status)
	})

	s.Run("success: admin reads any owner's order", func() {
		s.role = middleware.RoleAdmin
		view := builder.NewOrderBuilder().BuildView() // different owner
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: another owner's order is indistinguishable from a missing one", func() {
		view := builder.NewOrderBuilder().BuildView() // different owner
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 404 Not Found for an unknown order id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 400 Bad Request on a malformed order id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})
}

// ================================================================================
// TestListOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.Run("success: returns the owner's orders", func() {
		views := []*queries.OrderView{
			builder.NewOrderBuilder().WithOwnerID(s.ownerID).BuildView(),
			builder.NewOrderBuilder().WithOwnerID(s.ownerID).BuildView(),
		}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID, int32(0)).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: limit query parameter is passed through", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID, int32(5)).
			Return([]*queries.OrderView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=5", nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 Bad Request on a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/status"
	reqBody := map[string]any{"status": "shipped", "tracking_number": "TRK-1"}

	s.Run("success: admin applies a transition and receives the updated order", func() {
		s.role = middleware.RoleAdmin
		view := builder.NewOrderBuilder().BuildView()
		view.ID = orderID
		view.Status = "shipped"

		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.UpdateStatusRequest) error {
				s.Equal("shipped", req.Status)
				s.Require().NotNil(req.TrackingNumber)
				s.Equal("TRK-1", *req.TrackingNumber)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("shipped", body.Status)
	})

	s.Run("error: 403 Forbidden for non-admin callers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		s.role = middleware.RoleAdmin

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"order not found", commands.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
			{"unknown status value", commands.ErrInvalidStatus, http.StatusBadRequest, "Invalid order status"},
			{"illegal transition", commands.ErrInvalidStatusTransition, http.StatusConflict, "Invalid status transition"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
