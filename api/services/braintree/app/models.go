package app

import (
	"time"

	braintree "github.com/braintree-go/braintree-go"
)

// Customer is the reduced customer shape returned to the browser client.
type Customer struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	CreatedAt      *time.Time      `json:"createdAt"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// PaymentMethod summarizes a stored payment method. Card fields are set for
// credit cards, Email for PayPal accounts.
type PaymentMethod struct {
	Token           string `json:"token"`
	CardType        string `json:"cardType,omitempty"`
	Last4           string `json:"last4,omitempty"`
	ExpirationMonth string `json:"expirationMonth,omitempty"`
	ExpirationYear  string `json:"expirationYear,omitempty"`
	Email           string `json:"email,omitempty"`
	Default         bool   `json:"default"`
}

// CardSummary is the card detail nested in a transaction, null when the
// transaction has no card on file.
type CardSummary struct {
	CardType        string `json:"cardType"`
	Last4           string `json:"last4"`
	ExpirationMonth string `json:"expirationMonth"`
	ExpirationYear  string `json:"expirationYear"`
}

// Transaction is the reduced transaction shape.
type Transaction struct {
	ID        string       `json:"id"`
	Amount    string       `json:"amount"`
	Status    string       `json:"status"`
	Type      string       `json:"type"`
	CreatedAt *time.Time   `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt"`
	Card      *CardSummary `json:"card"`
}

// Modification is an add-on or discount attached to a subscription.
type Modification struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Quantity int    `json:"quantity"`
}

// Subscription is the reduced subscription shape. AddOns and Discounts are
// always arrays, never null.
type Subscription struct {
	ID              string         `json:"id"`
	Status          string         `json:"status"`
	PlanID          string         `json:"planId"`
	Price           string         `json:"price"`
	NextBillingDate string         `json:"nextBillingDate,omitempty"`
	CreatedAt       *time.Time     `json:"createdAt"`
	AddOns          []Modification `json:"addOns"`
	Discounts       []Modification `json:"discounts"`
}

// CreateCustomerInput is the POST /api/customer request body. Field-level
// validation is owned by the gateway; the body is forwarded as-is.
type CreateCustomerInput struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	PaymentMethodNonce string `json:"paymentMethodNonce,omitempty"`
}

// CheckoutInput is the POST /api/checkout request body. Nonce and amount are
// checked locally before any gateway call.
type CheckoutInput struct {
	PaymentMethodNonce string `json:"paymentMethodNonce" validate:"required"`
	Amount             string `json:"amount" validate:"required"`
	DeviceData         string `json:"deviceData,omitempty"`
}

func customerFromGateway(c *braintree.Customer) Customer {
	out := Customer{
		ID:             c.Id,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		CreatedAt:      c.CreatedAt,
		PaymentMethods: []PaymentMethod{},
	}
	if c.CreditCards != nil {
		for _, card := range c.CreditCards.CreditCard {
			out.PaymentMethods = append(out.PaymentMethods, PaymentMethod{
				Token:           card.Token,
				CardType:        card.CardType,
				Last4:           card.Last4,
				ExpirationMonth: card.ExpirationMonth,
				ExpirationYear:  card.ExpirationYear,
				Default:         card.Default,
			})
		}
	}
	if c.PayPalAccounts != nil {
		for _, acct := range c.PayPalAccounts.PayPalAccount {
			out.PaymentMethods = append(out.PaymentMethods, PaymentMethod{
				Token:   acct.Token,
				Email:   acct.Email,
				Default: acct.Default,
			})
		}
	}
	return out
}

func transactionFromGateway(t *braintree.Transaction) Transaction {
	out := Transaction{
		ID:        t.Id,
		Status:    string(t.Status),
		Type:      string(t.Type),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Amount != nil {
		out.Amount = t.Amount.String()
	}
	if t.CreditCard != nil && t.CreditCard.Last4 != "" {
		out.Card = &CardSummary{
			CardType:        t.CreditCard.CardType,
			Last4:           t.CreditCard.Last4,
			ExpirationMonth: t.CreditCard.ExpirationMonth,
			ExpirationYear:  t.CreditCard.ExpirationYear,
		}
	}
	return out
}

func subscriptionFromGateway(s *braintree.Subscription) Subscription {
	out := Subscription{
		ID:        s.Id,
		Status:    string(s.Status),
		PlanID:    s.PlanId,
		CreatedAt: s.CreatedAt,
		AddOns:    []Modification{},
		Discounts: []Modification{},
	}
	if s.Price != nil {
		out.Price = s.Price.String()
	}
	out.NextBillingDate = s.NextBillingDate
	if s.AddOns != nil {
		for _, a := range s.AddOns.AddOns {
			out.AddOns = append(out.AddOns, modificationFromGateway(a.Modification))
		}
	}
	if s.Discounts != nil {
		for _, d := range s.Discounts.Discounts {
			out.Discounts = append(out.Discounts, modificationFromGateway(d.Modification))
		}
	}
	return out
}

func modificationFromGateway(m braintree.Modification) Modification {
	out := Modification{
		ID:       m.Id,
		Name:     m.Name,
		Quantity: m.Quantity,
	}
	if m.Amount != nil {
		out.Amount = m.Amount.String()
	}
	return out
}
