package app

import (
	"context"
	"fmt"
	"sort"

	braintree "github.com/braintree-go/braintree-go"

	gw "github.com/paydemo/braintree-portal/api/services/braintree/gateway"
)

// Service defines the business operations for the Braintree domain. Every
// method is a single-shot translation of one HTTP route into gateway calls;
// nothing is cached or persisted between requests.
type Service interface {
	TestConnection(ctx context.Context) (string, error)
	GenerateClientToken(ctx context.Context, customerID string) (string, error)
	CreateCustomer(ctx context.Context, in CreateCustomerInput) (Customer, error)
	FindCustomer(ctx context.Context, id string) (Customer, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
	CustomerTransactions(ctx context.Context, customerID string) ([]Transaction, error)
	CustomerSubscriptions(ctx context.Context, customerID string) ([]Subscription, error)
	FindTransaction(ctx context.Context, id string) (Transaction, error)
	Checkout(ctx context.Context, in CheckoutInput) (Transaction, error)
	Refund(ctx context.Context, transactionID, amount string) (Transaction, error)
	Void(ctx context.Context, transactionID string) (Transaction, error)
}

// serviceImpl is a concrete implementation.
type serviceImpl struct{ gw gw.Gateway }

func NewService(g gw.Gateway) Service { return serviceImpl{gw: g} }

// TestConnection validates the configured credentials by generating a
// zero-option client token, and returns the gateway environment on success.
func (s serviceImpl) TestConnection(ctx context.Context) (string, error) {
	if _, err := s.gw.GenerateToken(ctx, ""); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return s.gw.Environment(), nil
}

// GenerateClientToken issues a client token, scoped to customerID when given.
// Every failure mode collapses to a gateway error at this layer.
func (s serviceImpl) GenerateClientToken(ctx context.Context, customerID string) (string, error) {
	token, err := s.gw.GenerateToken(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return token, nil
}

func (s serviceImpl) CreateCustomer(ctx context.Context, in CreateCustomerInput) (Customer, error) {
	req := &braintree.CustomerRequest{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		PaymentMethodNonce: in.PaymentMethodNonce,
	}
	cust, err := s.gw.CreateCustomer(ctx, req)
	if err != nil {
		return Customer{}, mapGatewayErr(err)
	}
	return customerFromGateway(cust), nil
}

// FindCustomer collapses every lookup failure to not-found; the gateway does
// not let us reliably distinguish a missing customer from other failures here.
func (s serviceImpl) FindCustomer(ctx context.Context, id string) (Customer, error) {
	cust, err := s.gw.FindCustomer(ctx, id)
	if err != nil {
		return Customer{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return customerFromGateway(cust), nil
}

func (s serviceImpl) ListCustomers(ctx context.Context) ([]Customer, error) {
	custs, err := s.gw.AllCustomers(ctx)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	out := make([]Customer, 0, len(custs))
	for _, c := range custs {
		out = append(out, customerFromGateway(c))
	}
	return out, nil
}

// CustomerTransactions buffers the full search result, then orders it newest
// first. Ties keep the gateway's order.
func (s serviceImpl) CustomerTransactions(ctx context.Context, customerID string) ([]Transaction, error) {
	txs, err := s.gw.CustomerTransactions(ctx, customerID)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionFromGateway(t))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return createdAfter(out[i].CreatedAt, out[j].CreatedAt)
	})
	return out, nil
}

// CustomerSubscriptions flattens subscriptions across every payment method
// attached to the customer. A customer with no payment methods short-circuits
// to an empty result.
func (s serviceImpl) CustomerSubscriptions(ctx context.Context, customerID string) ([]Subscription, error) {
	cust, err := s.gw.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	out := []Subscription{}
	if cust.CreditCards != nil {
		for _, card := range cust.CreditCards.CreditCard {
			out = appendSubscriptions(out, card.Subscriptions)
		}
	}
	if cust.PayPalAccounts != nil {
		for _, acct := range cust.PayPalAccounts.PayPalAccount {
			out = appendSubscriptions(out, acct.Subscriptions)
		}
	}
	return out, nil
}

func appendSubscriptions(dst []Subscription, subs *braintree.Subscriptions) []Subscription {
	if subs == nil {
		return dst
	}
	for _, sub := range subs.Subscription {
		dst = append(dst, subscriptionFromGateway(sub))
	}
	return dst
}

// FindTransaction collapses every lookup failure to not-found, same as
// FindCustomer.
func (s serviceImpl) FindTransaction(ctx context.Context, id string) (Transaction, error) {
	tx, err := s.gw.FindTransaction(ctx, id)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return transactionFromGateway(tx), nil
}

// Checkout submits a sale with settlement always requested; there is no
// separate authorize-then-capture flow.
func (s serviceImpl) Checkout(ctx context.Context, in CheckoutInput) (Transaction, error) {
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return Transaction{}, &RejectionError{Message: fmt.Sprintf("invalid amount: %s", in.Amount)}
	}
	req := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             amount,
		PaymentMethodNonce: in.PaymentMethodNonce,
		DeviceData:         in.DeviceData,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}
	tx, err := s.gw.Sale(ctx, req)
	if err != nil {
		return Transaction{}, mapGatewayErr(err)
	}
	return transactionFromGateway(tx), nil
}

// Refund issues a full refund when amount is empty, otherwise a partial
// refund of exactly the given amount.
func (s serviceImpl) Refund(ctx context.Context, transactionID, amount string) (Transaction, error) {
	var dec *braintree.Decimal
	if amount != "" {
		var err error
		dec, err = parseAmount(amount)
		if err != nil {
			return Transaction{}, &RejectionError{Message: fmt.Sprintf("invalid amount: %s", amount)}
		}
	}
	tx, err := s.gw.Refund(ctx, transactionID, dec)
	if err != nil {
		return Transaction{}, mapGatewayErr(err)
	}
	return transactionFromGateway(tx), nil
}

// Void cancels an authorized-but-unsettled transaction.
func (s serviceImpl) Void(ctx context.Context, transactionID string) (Transaction, error) {
	tx, err := s.gw.Void(ctx, transactionID)
	if err != nil {
		return Transaction{}, mapGatewayErr(err)
	}
	return transactionFromGateway(tx), nil
}
