package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	app "github.com/paydemo/braintree-portal/api/services/braintree/app"
)

func CreateCustomerHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in app.CreateCustomerInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		cust, err := svc.CreateCustomer(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, "Customer not found", "Failed to create customer")
			return
		}
		writeJSON(w, http.StatusOK, customerResponse{Success: true, Customer: cust})
	}
}

func FindCustomerHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cust, err := svc.FindCustomer(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, r, err, "Customer not found", "Failed to fetch customer")
			return
		}
		writeJSON(w, http.StatusOK, customerResponse{Success: true, Customer: cust})
	}
}

func ListCustomersHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		custs, err := svc.ListCustomers(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "", "Failed to fetch customers")
			return
		}
		writeJSON(w, http.StatusOK, customersResponse{Success: true, Customers: custs, Count: len(custs)})
	}
}

func CustomerTransactionsHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := svc.CustomerTransactions(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, r, err, "", "Failed to fetch transactions")
			return
		}
		writeJSON(w, http.StatusOK, transactionsResponse{Success: true, Transactions: txs, Count: len(txs)})
	}
}

func CustomerSubscriptionsHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := svc.CustomerSubscriptions(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, r, err, "Customer not found", "Failed to fetch subscriptions")
			return
		}
		writeJSON(w, http.StatusOK, subscriptionsResponse{Success: true, Subscriptions: subs, Count: len(subs)})
	}
}
