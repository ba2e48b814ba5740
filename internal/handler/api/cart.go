package api

import (
	"errors"
	"net/http"

	reqdto "shopfront/internal/handler/dto/request"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/handler/middleware"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Get cart
// @Description Get the current owner's cart with computed totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, totals, err := h.cartQueries.GetCart(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view, totals))
}

// @Summary Add cart item
// @Description Add a product to the cart, snapshotting its current price
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.cartCommands.AddItem(c.Request.Context(), ownerID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Update cart item
// @Description Overwrite the quantity of a cart line; zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cart, err := h.cartCommands.UpdateItem(c.Request.Context(), ownerID, productID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

// @Summary Remove cart item
// @Description Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	cart, err := h.cartCommands.RemoveItem(c.Request.Context(), ownerID, productID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(cart))
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
	case errors.Is(err, commands.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock",
		})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be positive",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
