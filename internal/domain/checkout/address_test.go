//go:build unit

package checkout_test

import (
	"testing"

	"shopfront/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
)

func TestAddressValidate(t *testing.T) {
	t.Run("complete address passes", func(t *testing.T) {
		assert.NoError(t, validAddress().Validate())
	})

	t.Run("each required field must be present", func(t *testing.T) {
		mutations := map[string]func(*checkout.Address){
			"name":         func(a *checkout.Address) { a.Name = "" },
			"email":        func(a *checkout.Address) { a.Email = "" },
			"phone":        func(a *checkout.Address) { a.Phone = "   " },
			"postal code":  func(a *checkout.Address) { a.PostalCode = "" },
			"street":       func(a *checkout.Address) { a.Street = "" },
			"number":       func(a *checkout.Address) { a.Number = "" },
			"neighborhood": func(a *checkout.Address) { a.Neighborhood = "" },
			"city":         func(a *checkout.Address) { a.City = "" },
			"state":        func(a *checkout.Address) { a.State = "" },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				addr := validAddress()
				mutate(&addr)
				assert.ErrorIs(t, addr.Validate(), checkout.ErrMissingField)
			})
		}
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		for _, email := range []string{"plain", "no@tld", "spaces in@example.com", "@example.com"} {
			addr := validAddress()
			addr.Email = email
			assert.ErrorIs(t, addr.Validate(), checkout.ErrInvalidEmail, "email: %s", email)
		}
	})
}

func TestApplyLookup(t *testing.T) {
	addr := validAddress()
	addr.Street = "typed by hand"

	addr.ApplyLookup(checkout.PostalLookupResult{
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	})

	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "Bela Vista", addr.Neighborhood)
	// Identity fields belong to the customer, not the lookup
	assert.Equal(t, "Ana Souza", addr.Name)
	assert.Equal(t, "ana@example.com", addr.Email)
	assert.Equal(t, "1000", addr.Number)
}

func TestIsLookupTriggered(t *testing.T) {
	tests := []struct {
		postalCode string
		want       bool
	}{
		{"01310100", true},
		{"01310-100", true}, // separator is ignored, digits count
		{"0131010", false},
		{"013101000", false},
		{"", false},
		{"abcdefgh", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, checkout.IsLookupTriggered(tt.postalCode), "postal code: %q", tt.postalCode)
	}
}
