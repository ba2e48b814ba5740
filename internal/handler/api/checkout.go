package api

import (
	"errors"
	"net/http"

	"shopfront/internal/domain/checkout"
	reqdto "shopfront/internal/handler/dto/request"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/handler/middleware"
	"shopfront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	flowCommands     commands.CheckoutFlowCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, flowCommands commands.CheckoutFlowCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		flowCommands:     flowCommands,
	}
}

// @Summary Create checkout session
// @Description Create a hosted payment session for the current cart
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCheckoutSessionRequest true "Redirect URLs"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCheckoutSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.CreateSession(c.Request.Context(), ownerID, req.SuccessURL, req.CancelURL)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrPaymentProvider):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CheckoutSessionResponse{
		SessionID:   result.SessionID,
		RedirectURL: result.RedirectURL,
	})
}

// @Summary Get checkout flow
// @Description Get the current checkout wizard state
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FlowResponse
// @Router /checkout/flow [get]
func (h *CheckoutHandler) GetFlow(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view := h.flowCommands.GetFlow(ownerID)
	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Advance checkout flow
// @Description Submit the current stage and move one step forward
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdvanceFlowRequest true "Stage payload"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/flow/advance [post]
func (h *CheckoutHandler) AdvanceFlow(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AdvanceFlowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	advanceReq := commands.AdvanceRequest{
		ShippingMethod: req.ShippingMethod,
		SuccessURL:     req.SuccessURL,
		CancelURL:      req.CancelURL,
	}
	if req.Address != nil {
		addr := req.Address.ToDomain()
		advanceReq.Address = &addr
	}

	result, err := h.flowCommands.Advance(c.Request.Context(), ownerID, advanceReq)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStageValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Stage validation failed",
			})
		case errors.Is(err, commands.ErrInvalidStage):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid checkout stage",
			})
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrPaymentProvider):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdvanceResult(result))
}

// @Summary Step checkout flow back
// @Description Move the checkout wizard one stage back
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} map[string]string
// @Router /checkout/flow/back [post]
func (h *CheckoutHandler) BackFlow(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.flowCommands.Back(ownerID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Already at the first stage",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(*view))
}

// @Summary Postal code lookup
// @Description Resolve a postal code into address fields for autofill
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PostalLookupRequest true "Postal code"
// @Success 200 {object} resdto.PostalLookupResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/postal-lookup [post]
func (h *CheckoutHandler) LookupPostalCode(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PostalLookupRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if !checkout.IsLookupTriggered(req.PostalCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Postal code must contain exactly 8 digits",
		})
		return
	}

	result, err := h.flowCommands.LookupPostalCode(c.Request.Context(), ownerID, req.PostalCode)
	if err != nil || result == nil {
		// Lookup is advisory; the client falls back to manual entry
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Postal code not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPostalLookup(result))
}
