package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"shopfront/internal/pkg/config"
	"shopfront/internal/pkg/errs"
	"shopfront/internal/usecase/commands"
)

// Client talks to the hosted payment provider's REST API. Sessions live on
// the provider side; this client never persists anything locally.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type sessionLineItem struct {
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int32  `json:"quantity"`
}

type createSessionRequest struct {
	LineItems  []sessionLineItem        `json:"line_items"`
	SuccessURL string                   `json:"success_url"`
	CancelURL  string                   `json:"cancel_url"`
	Metadata   commands.SessionMetadata `json:"metadata"`
}

type createSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type sessionDetailsResponse struct {
	ID                  string                   `json:"id"`
	AmountSubtotalCents int64                    `json:"amount_subtotal_cents"`
	AmountTotalCents    int64                    `json:"amount_total_cents"`
	Metadata            commands.SessionMetadata `json:"metadata"`
}

func (c *Client) CreateSession(ctx context.Context, params commands.CreateSessionParams) (*commands.Session, error) {
	items := make([]sessionLineItem, len(params.LineItems))
	for i, li := range params.LineItems {
		items[i] = sessionLineItem{
			Name:           li.Name,
			UnitPriceCents: li.UnitPriceCents,
			Quantity:       li.Quantity,
		}
	}

	reqBody := createSessionRequest{
		LineItems:  items,
		SuccessURL: params.SuccessURL,
		CancelURL:  params.CancelURL,
		Metadata:   params.Metadata,
	}

	var resp createSessionResponse
	if err := c.post(ctx, "/v1/checkout/sessions", reqBody, &resp); err != nil {
		return nil, err
	}

	return &commands.Session{
		SessionID:   resp.ID,
		RedirectURL: resp.URL,
	}, nil
}

func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*commands.SessionDetails, error) {
	var resp sessionDetailsResponse
	if err := c.get(ctx, "/v1/checkout/sessions/"+sessionID, &resp); err != nil {
		return nil, err
	}

	return &commands.SessionDetails{
		SessionID:           resp.ID,
		AmountSubtotalCents: resp.AmountSubtotalCents,
		AmountTotalCents:    resp.AmountTotalCents,
		Metadata:            resp.Metadata,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode payment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build payment request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build payment request")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "payment provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("payment provider returned %d: %s", resp.StatusCode, snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode payment response")
	}
	return nil
}
