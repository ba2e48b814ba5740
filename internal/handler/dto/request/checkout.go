package request

import (
	"shopfront/internal/domain/checkout"
)

type CreateCheckoutSessionRequest struct {
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}

type AddressRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

func (r AddressRequest) ToDomain() checkout.Address {
	return checkout.Address{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PostalCode:   r.PostalCode,
		Street:       r.Street,
		Number:       r.Number,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}

// AdvanceFlowRequest carries the payload of whatever stage is being
// submitted; unused fields for the current stage are ignored.
type AdvanceFlowRequest struct {
	Address        *AddressRequest `json:"address,omitempty"`
	ShippingMethod string          `json:"shipping_method,omitempty"`
	SuccessURL     string          `json:"success_url,omitempty"`
	CancelURL      string          `json:"cancel_url,omitempty"`
}

type PostalLookupRequest struct {
	PostalCode string `json:"postal_code" binding:"required"`
}
