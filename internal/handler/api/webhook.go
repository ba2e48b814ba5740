package api

import (
	"encoding/json"
	"io"
	"net/http"

	"shopfront/internal/infra/payment"
	"shopfront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "X-Webhook-Signature"

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	verifier        *payment.SignatureVerifier
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands, verifier *payment.SignatureVerifier) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
		verifier:        verifier,
	}
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		SessionID string `json:"session_id"`
	} `json:"data"`
}

// @Summary Payment webhook
// @Description Receive asynchronous payment events from the provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string true "HMAC-SHA256 signature of the raw body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	// The signature covers the raw body; read before any binding
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	if !h.verifier.Verify(body, c.GetHeader(signatureHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid webhook signature",
		})
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payload format",
		})
		return
	}
	if payload.Type == "" || payload.Data.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing event type or session id",
		})
		return
	}

	result, err := h.webhookCommands.HandleEvent(c.Request.Context(), payload.Type, payload.Data.SessionID)
	if err != nil {
		// A non-2xx response makes the provider redeliver; reconciliation is
		// idempotent so the retry is safe
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Reconciliation failed",
		})
		return
	}

	// Events of other types are acknowledged without action
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	status := "reconciled"
	if result.IsReplayed {
		status = "duplicate"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"order_id": result.OrderID.String(),
	})
}
