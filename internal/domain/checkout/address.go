package checkout

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingField = errors.New("required address field is blank")
	ErrInvalidEmail = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PostalCodeLength is the digit count that triggers address autofill.
const PostalCodeLength = 8

type Address struct {
	Name         string
	Email        string
	Phone        string
	PostalCode   string
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
}

func (a Address) Validate() error {
	required := []string{
		a.Name, a.Email, a.Phone, a.PostalCode,
		a.Street, a.Number, a.Neighborhood, a.City, a.State,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingField
		}
	}
	if !emailPattern.MatchString(a.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// PostalLookupResult is the advisory autofill payload. Lookup failure never
// blocks manual entry.
type PostalLookupResult struct {
	Street       string
	Neighborhood string
	City         string
	State        string
}

// ApplyLookup fills location fields from the lookup. User-entered name,
// email, phone and number are untouched.
func (a *Address) ApplyLookup(r PostalLookupResult) {
	a.Street = r.Street
	a.Neighborhood = r.Neighborhood
	a.City = r.City
	a.State = r.State
}

// IsLookupTriggered reports whether the postal code reached the fixed digit
// length that fires the autofill side effect.
func IsLookupTriggered(postalCode string) bool {
	digits := 0
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == PostalCodeLength
}
