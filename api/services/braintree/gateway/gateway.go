package gateway

import (
	"context"

	braintree "github.com/braintree-go/braintree-go"
)

// Gateway abstracts the Braintree SDK operations needed by the app layer.
// Search-backed listings drain every result page before returning, so callers
// always see the complete set for the query.
type Gateway interface {
	// GenerateToken issues a client token, scoped to customerID when non-empty.
	GenerateToken(ctx context.Context, customerID string) (string, error)
	CreateCustomer(ctx context.Context, req *braintree.CustomerRequest) (*braintree.Customer, error)
	FindCustomer(ctx context.Context, id string) (*braintree.Customer, error)
	AllCustomers(ctx context.Context) ([]*braintree.Customer, error)
	CustomerTransactions(ctx context.Context, customerID string) ([]*braintree.Transaction, error)
	FindTransaction(ctx context.Context, id string) (*braintree.Transaction, error)
	Sale(ctx context.Context, req *braintree.TransactionRequest) (*braintree.Transaction, error)
	// Refund issues a full refund when amount is nil, a partial refund otherwise.
	Refund(ctx context.Context, transactionID string, amount *braintree.Decimal) (*braintree.Transaction, error)
	Void(ctx context.Context, transactionID string) (*braintree.Transaction, error)
	// Environment reports which Braintree environment the gateway talks to.
	Environment() string
}
