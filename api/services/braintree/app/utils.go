package app

import (
	"strings"
	"time"

	braintree "github.com/braintree-go/braintree-go"
)

// parseAmount parses a decimal amount string like "10.00" into the SDK's
// decimal type.
func parseAmount(s string) (*braintree.Decimal, error) {
	d := braintree.NewDecimal(0, 2)
	if err := d.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return nil, err
	}
	return d, nil
}

// createdAfter orders timestamps descending with nil sorting last.
func createdAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
