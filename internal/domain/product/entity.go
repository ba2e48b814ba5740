package product

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid product status")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusArchived:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Spec is the read-side shape of a product as seen by the cart.
// Products are administered elsewhere; this domain only consumes them.
type Spec struct {
	ID         uuid.UUID
	Name       string
	SKU        string
	PriceCents int64
	Stock      int32
	Status     Status
}

func (s Spec) IsPurchasable() bool {
	return s.Status == StatusActive
}

func (s Spec) HasStock(quantity int32) bool {
	return s.Stock >= quantity
}
