package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productQueries queries.ProductQueries
}

func NewProductHandler(productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productQueries: productQueries,
	}
}

// @Summary List products
// @Description List catalog products with optional filters
// @Tags products
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param min_price_cents query int false "Minimum price in cents"
// @Param max_price_cents query int false "Maximum price in cents"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}

	views, err := h.productQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Get product
// @Description Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	view, err := h.productQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

func parseProductFilter(c *gin.Context) (queries.ProductFilter, error) {
	var filter queries.ProductFilter

	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("min_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.MinPriceCents = &cents
	}
	if v := c.Query("max_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxPriceCents = &cents
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return filter, err
		}
		filter.Limit = int32(limit)
	}

	return filter, nil
}
