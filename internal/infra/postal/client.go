package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"shopfront/internal/domain/checkout"
	"shopfront/internal/pkg/config"
	"shopfront/internal/pkg/errs"
)

// Client resolves postal codes against a ViaCEP-compatible lookup service.
// Lookups are advisory; the address form stays editable regardless of the
// result.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.PostalConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type lookupResponse struct {
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro"`
}

func (c *Client) Lookup(ctx context.Context, postalCode string) (*checkout.PostalLookupResult, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, postalCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build postal lookup request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "postal lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("postal lookup returned %d", resp.StatusCode))
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode postal lookup response")
	}
	if body.Erro {
		return nil, errs.New("postal code not found")
	}

	return &checkout.PostalLookupResult{
		Street:       body.Street,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		State:        body.State,
	}, nil
}
