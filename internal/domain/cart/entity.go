package cart

import (
	"errors"
	"time"

	"shopfront/internal/domain/product"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrOutOfStock         = errors.New("insufficient stock")
	ErrProductNotSellable = errors.New("product is not purchasable")
)

// Line carries the price snapshot taken at add-time. The snapshot is
// deliberate: the price the customer saw must not change mid-session even
// when the catalog price moves.
type Line struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

type Cart struct {
	ownerID   uuid.UUID
	lines     []Line
	updatedAt time.Time
}

func NewCart(ownerID uuid.UUID) *Cart {
	return &Cart{ownerID: ownerID}
}

func ReconstructCart(ownerID uuid.UUID, lines []Line, updatedAt time.Time) *Cart {
	return &Cart{
		ownerID:   ownerID,
		lines:     lines,
		updatedAt: updatedAt,
	}
}

// AddItem appends a new line with a price snapshot, or increments the
// quantity of an existing line. Stock is validated against the requested
// quantity only; the combined quantity of an existing line is not re-checked.
func (c *Cart) AddItem(spec product.Spec, quantity int32, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !spec.IsPurchasable() {
		return ErrProductNotSellable
	}
	if !spec.HasStock(quantity) {
		return ErrOutOfStock
	}

	for i := range c.lines {
		if c.lines[i].ProductID == spec.ID {
			c.lines[i].Quantity += quantity
			c.updatedAt = now
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		ProductID:      spec.ID,
		Name:           spec.Name,
		UnitPriceCents: spec.PriceCents,
		Quantity:       quantity,
	})
	c.updatedAt = now
	return nil
}

// UpdateItem overwrites the line quantity. The price snapshot is preserved,
// not refreshed. A quantity of zero or less removes the line.
func (c *Cart) UpdateItem(spec product.Spec, quantity int32, now time.Time) error {
	if quantity <= 0 {
		c.RemoveItem(spec.ID, now)
		return nil
	}
	if !spec.HasStock(quantity) {
		return ErrOutOfStock
	}

	for i := range c.lines {
		if c.lines[i].ProductID == spec.ID {
			c.lines[i].Quantity = quantity
			c.updatedAt = now
			return nil
		}
	}

	// Updating a line that does not exist adds it with a fresh snapshot
	return c.AddItem(spec, quantity, now)
}

// RemoveItem filters out the line. Removing a non-existent line is a silent
// no-op, not an error.
func (c *Cart) RemoveItem(productID uuid.UUID, now time.Time) {
	filtered := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			filtered = append(filtered, l)
		}
	}
	c.lines = filtered
	c.updatedAt = now
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Snapshot returns an independent copy of the lines, safe to embed in
// checkout session metadata.
func (c *Cart) Snapshot() []Line {
	snapshot := make([]Line, len(c.lines))
	copy(snapshot, c.lines)
	return snapshot
}

func (c *Cart) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Cart) Lines() []Line        { return c.lines }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }
