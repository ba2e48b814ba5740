//go:build unit

package cart_test

import (
	"testing"

	"shopfront/internal/domain/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestComputeTotals(t *testing.T) {
	pricing := cart.DefaultPricing()

	line := func(unitPriceCents int64, quantity int32) cart.Line {
		return cart.Line{
			ProductID:      uuid.New(),
			Name:           "item",
			UnitPriceCents: unitPriceCents,
			Quantity:       quantity,
		}
	}

	tests := []struct {
		name  string
		lines []cart.Line
		want  cart.Totals
	}{
		{
			name:  "empty cart still carries the base shipping fee",
			lines: nil,
			want:  cart.Totals{SubtotalCents: 0, TaxCents: 0, ShippingCents: 1000, TotalCents: 1000},
		},
		{
			name:  "subtotal under threshold pays shipping",
			lines: []cart.Line{line(2500, 2)},
			want:  cart.Totals{SubtotalCents: 5000, TaxCents: 500, ShippingCents: 1000, TotalCents: 6500},
		},
		{
			name:  "subtotal exactly at threshold still pays shipping",
			lines: []cart.Line{line(5000, 2)},
			want:  cart.Totals{SubtotalCents: 10000, TaxCents: 1000, ShippingCents: 1000, TotalCents: 12000},
		},
		{
			name:  "subtotal over threshold ships free",
			lines: []cart.Line{line(6500, 2)},
			want:  cart.Totals{SubtotalCents: 13000, TaxCents: 1300, ShippingCents: 0, TotalCents: 14300},
		},
		{
			name:  "multiple lines accumulate into one subtotal",
			lines: []cart.Line{line(4500, 2), line(3000, 1)},
			want:  cart.Totals{SubtotalCents: 12000, TaxCents: 1200, ShippingCents: 0, TotalCents: 13200},
		},
		{
			name:  "fractional tax rounds half away from zero",
			lines: []cart.Line{line(5, 1)},
			want:  cart.Totals{SubtotalCents: 5, TaxCents: 1, ShippingCents: 1000, TotalCents: 1006},
		},
		{
			name:  "fractional tax below half rounds down",
			lines: []cart.Line{line(4, 1)},
			want:  cart.Totals{SubtotalCents: 4, TaxCents: 0, ShippingCents: 1000, TotalCents: 1004},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cart.ComputeTotals(tt.lines, pricing)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeTotals() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeTotalsIsReproducible(t *testing.T) {
	pricing := cart.DefaultPricing()
	lines := []cart.Line{
		{ProductID: uuid.New(), Name: "a", UnitPriceCents: 3333, Quantity: 3},
		{ProductID: uuid.New(), Name: "b", UnitPriceCents: 101, Quantity: 7},
	}

	first := cart.ComputeTotals(lines, pricing)
	for i := 0; i < 100; i++ {
		if diff := cmp.Diff(first, cart.ComputeTotals(lines, pricing)); diff != "" {
			t.Fatalf("ComputeTotals() not reproducible (-first +got):\n%s", diff)
		}
	}
}
