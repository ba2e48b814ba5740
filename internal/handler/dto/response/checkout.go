package response

import (
	"shopfront/internal/domain/checkout"
	"shopfront/internal/usecase/commands"
)

type CheckoutSessionResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

type AddressResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type FlowResponse struct {
	Stage          string          `json:"stage"`
	Address        AddressResponse `json:"address"`
	ShippingMethod string          `json:"shippingMethod,omitempty"`
	RedirectURL    string          `json:"redirectUrl,omitempty"`
	SessionID      string          `json:"sessionId,omitempty"`
}

type PostalLookupResponse struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

func FromFlowView(view commands.FlowView) *FlowResponse {
	return &FlowResponse{
		Stage:          string(view.Stage),
		Address:        fromAddress(view.Address),
		ShippingMethod: view.ShippingMethod,
	}
}

func FromAdvanceResult(result *commands.AdvanceResult) *FlowResponse {
	resp := FromFlowView(result.Flow)
	resp.RedirectURL = result.RedirectURL
	resp.SessionID = result.SessionID
	return resp
}

func FromPostalLookup(r *checkout.PostalLookupResult) *PostalLookupResponse {
	return &PostalLookupResponse{
		Street:       r.Street,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}

func fromAddress(a checkout.Address) AddressResponse {
	return AddressResponse{
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		PostalCode:   a.PostalCode,
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}
