package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "shopfront/internal/handler/dto/request"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/handler/middleware"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Get order
// @Description Get order by ID; owners see only their own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Non-admin callers cannot read other owners' orders
	if role, _ := middleware.GetRole(c); role != middleware.RoleAdmin && view.OwnerID != ownerID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List the current owner's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var limit int32
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = int32(parsed)
	}

	views, err := h.orderQueries.ListByOwner(c.Request.Context(), ownerID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Update order status
// @Description Apply a lifecycle transition to an order (admin only)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status transition"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.orderCommands.UpdateStatus(c.Request.Context(), id, commands.UpdateStatusRequest{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
		TrackingURL:    req.TrackingURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order status",
			})
		case errors.Is(err, commands.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
