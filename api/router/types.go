package router

import app "github.com/paydemo/braintree-portal/api/services/braintree/app"

// Response envelopes. Every endpoint, including /api/config and
// /api/client-token, uses the success wrapper.

type errorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  []app.ErrorDetail `json:"errors,omitempty"`
}

type configResponse struct {
	Success     bool   `json:"success"`
	CustomerID  string `json:"customerId"`
	Environment string `json:"environment"`
}

type connectionResponse struct {
	Success     bool   `json:"success"`
	Environment string `json:"environment"`
}

type tokenResponse struct {
	Success     bool   `json:"success"`
	ClientToken string `json:"clientToken"`
}

type customerResponse struct {
	Success  bool         `json:"success"`
	Customer app.Customer `json:"customer"`
}

type customersResponse struct {
	Success   bool           `json:"success"`
	Customers []app.Customer `json:"customers"`
	Count     int            `json:"count"`
}

type transactionResponse struct {
	Success     bool            `json:"success"`
	Transaction app.Transaction `json:"transaction"`
}

type transactionsResponse struct {
	Success      bool              `json:"success"`
	Transactions []app.Transaction `json:"transactions"`
	Count        int               `json:"count"`
}

type subscriptionsResponse struct {
	Success       bool               `json:"success"`
	Subscriptions []app.Subscription `json:"subscriptions"`
	Count         int                `json:"count"`
}
