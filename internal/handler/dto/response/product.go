package response

import (
	"time"

	"shopfront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	PriceCents int64     `json:"priceCents"`
	Stock      int32     `json:"stock"`
	Status     string    `json:"status"`
	Category   string    `json:"category"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromProductViews(rms []*queries.ProductView) []*ProductResponse {
	resp := make([]*ProductResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromProductView(rm)
	}
	return resp
}
