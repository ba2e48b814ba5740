//go:build unit

package cart_test

import (
	"testing"
	"time"

	"shopfront/internal/domain/cart"
	"shopfront/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSpec(priceCents int64, stock int32) product.Spec {
	return product.Spec{
		ID:         uuid.New(),
		Name:       "Mechanical Keyboard",
		SKU:        "KB-001",
		PriceCents: priceCents,
		Stock:      stock,
		Status:     product.StatusActive,
	}
}

func TestCartAddItem(t *testing.T) {
	now := time.Now()

	t.Run("adds a line with a price snapshot", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)

		require.NoError(t, c.AddItem(spec, 2, now))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, spec.ID, lines[0].ProductID)
		assert.Equal(t, int64(4500), lines[0].UnitPriceCents)
		assert.Equal(t, int32(2), lines[0].Quantity)
	})

	t.Run("adding the same product increments the existing line", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)

		require.NoError(t, c.AddItem(spec, 2, now))
		require.NoError(t, c.AddItem(spec, 3, now))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int32(5), lines[0].Quantity)
	})

	t.Run("the snapshot survives a later catalog price change", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		require.NoError(t, c.AddItem(spec, 1, now))

		spec.PriceCents = 9900
		require.NoError(t, c.AddItem(spec, 1, now))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(4500), lines[0].UnitPriceCents)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		c := cart.NewCart(uuid.New())

		assert.ErrorIs(t, c.AddItem(activeSpec(4500, 10), 0, now), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.AddItem(activeSpec(4500, 10), -1, now), cart.ErrInvalidQuantity)
	})

	t.Run("rejects archived product", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		spec.Status = product.StatusArchived

		assert.ErrorIs(t, c.AddItem(spec, 1, now), cart.ErrProductNotSellable)
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		c := cart.NewCart(uuid.New())

		assert.ErrorIs(t, c.AddItem(activeSpec(4500, 3), 4, now), cart.ErrOutOfStock)
	})

	t.Run("stock is checked against the requested quantity only", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 3)

		require.NoError(t, c.AddItem(spec, 2, now))
		// Combined quantity of 4 exceeds stock but each request was within it
		require.NoError(t, c.AddItem(spec, 2, now))

		assert.Equal(t, int32(4), c.Lines()[0].Quantity)
	})
}

func TestCartUpdateItem(t *testing.T) {
	now := time.Now()

	t.Run("overwrites the quantity and keeps the snapshot", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		require.NoError(t, c.AddItem(spec, 2, now))

		spec.PriceCents = 9900
		require.NoError(t, c.UpdateItem(spec, 5, now))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int32(5), lines[0].Quantity)
		assert.Equal(t, int64(4500), lines[0].UnitPriceCents)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		require.NoError(t, c.AddItem(spec, 2, now))

		require.NoError(t, c.UpdateItem(spec, 0, now))

		assert.True(t, c.IsEmpty())
	})

	t.Run("updating a missing line adds it with a fresh snapshot", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)

		require.NoError(t, c.UpdateItem(spec, 3, now))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int32(3), lines[0].Quantity)
	})

	t.Run("rejects quantity above current stock", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		require.NoError(t, c.AddItem(spec, 2, now))

		spec.Stock = 3
		assert.ErrorIs(t, c.UpdateItem(spec, 4, now), cart.ErrOutOfStock)
	})
}

func TestCartRemoveItem(t *testing.T) {
	now := time.Now()

	t.Run("removes the line", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		require.NoError(t, c.AddItem(spec, 2, now))

		c.RemoveItem(spec.ID, now)

		assert.True(t, c.IsEmpty())
	})

	t.Run("removing an absent line is a silent no-op", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		spec := activeSpec(4500, 10)
		require.NoError(t, c.AddItem(spec, 2, now))

		c.RemoveItem(uuid.New(), now)

		assert.Len(t, c.Lines(), 1)
	})
}

func TestCartSnapshot(t *testing.T) {
	now := time.Now()
	c := cart.NewCart(uuid.New())
	spec := activeSpec(4500, 10)
	require.NoError(t, c.AddItem(spec, 2, now))

	snapshot := c.Snapshot()
	require.NoError(t, c.UpdateItem(spec, 9, now))

	// Mutating the cart must not reach into an already-taken snapshot
	assert.Equal(t, int32(2), snapshot[0].Quantity)
	assert.Equal(t, int32(9), c.Lines()[0].Quantity)
}
