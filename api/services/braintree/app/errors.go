package app

import (
	"errors"
	"fmt"
	"net/http"

	braintree "github.com/braintree-go/braintree-go"
)

// Typed errors for the Braintree app layer. These enable HTTP status mapping
// without relying on SDK-specific error types at the transport layer.
var (
	// ErrNotFound indicates a customer or transaction lookup failed.
	ErrNotFound = errors.New("not found")
	// ErrGateway indicates an unexpected failure from the Braintree gateway.
	ErrGateway = errors.New("gateway error")
)

// ErrorDetail is one structured validation error reported by the gateway.
type ErrorDetail struct {
	Code      string `json:"code"`
	Attribute string `json:"attribute"`
	Message   string `json:"message"`
}

// RejectionError carries a validation or business rejection reported by the
// gateway (declined payment, invalid refund amount, failed creation). The
// message and detail list are forwarded to the client verbatim.
type RejectionError struct {
	Message string
	Details []ErrorDetail
}

func (e *RejectionError) Error() string { return e.Message }

// mapGatewayErr classifies an SDK error into the app layer's typed errors.
// Already-classified errors pass through unchanged.
func mapGatewayErr(err error) error {
	if err == nil {
		return nil
	}
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrGateway) {
		return err
	}
	var apiErr *braintree.BraintreeError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode() == http.StatusNotFound {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		details := []ErrorDetail{}
		for _, v := range apiErr.All() {
			details = append(details, ErrorDetail{
				Code:      v.Code,
				Attribute: v.Attribute,
				Message:   v.Message,
			})
		}
		return &RejectionError{Message: apiErr.Error(), Details: details}
	}
	return fmt.Errorf("%w: %v", ErrGateway, err)
}
