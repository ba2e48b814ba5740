package cart

import "math"

type Pricing struct {
	TaxRate               float64
	ShippingFeeCents      int64
	FreeShippingOverCents int64
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.10,
		ShippingFeeCents:      1000,
		FreeShippingOverCents: 10000,
	}
}

type Totals struct {
	SubtotalCents int64
	TaxCents      int64
	ShippingCents int64
	TotalCents    int64
}

// ComputeTotals is pure and reproducible bit-for-bit from its inputs.
// Shipping is waived when the subtotal strictly exceeds the free-shipping
// threshold. Tax is rounded half away from zero on cents.
func ComputeTotals(lines []Line, pricing Pricing) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPriceCents * int64(l.Quantity)
	}

	tax := roundHalfAwayFromZero(float64(subtotal) * pricing.TaxRate)

	var shipping int64
	if subtotal <= pricing.FreeShippingOverCents {
		shipping = pricing.ShippingFeeCents
	}

	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		ShippingCents: shipping,
		TotalCents:    subtotal + tax + shipping,
	}
}

func roundHalfAwayFromZero(v float64) int64 {
	if v < 0 {
		return -int64(math.Floor(-v + 0.5))
	}
	return int64(math.Floor(v + 0.5))
}
