package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	app "github.com/paydemo/braintree-portal/api/services/braintree/app"
)

var validate = validator.New()

func FindTransactionHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := svc.FindTransaction(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, r, err, "Transaction not found", "Failed to fetch transaction")
			return
		}
		writeJSON(w, http.StatusOK, transactionResponse{Success: true, Transaction: tx})
	}
}

// CheckoutHandler submits a sale. The required fields are checked locally so
// an obviously incomplete request never reaches the gateway.
func CheckoutHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in app.CheckoutInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "paymentMethodNonce and amount are required"})
			return
		}
		tx, err := svc.Checkout(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, "", "Failed to process checkout")
			return
		}
		writeJSON(w, http.StatusOK, transactionResponse{Success: true, Transaction: tx})
	}
}

// RefundHandler refunds a transaction: fully when the body omits an amount,
// partially for exactly the given amount otherwise. A body is optional.
func RefundHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Amount string `json:"amount"`
		}
		if r.Body != nil {
			// An empty or absent body means a full refund.
			_ = json.NewDecoder(r.Body).Decode(&in)
		}
		tx, err := svc.Refund(r.Context(), mux.Vars(r)["transactionId"], in.Amount)
		if err != nil {
			writeServiceError(w, r, err, "Transaction not found", "Failed to process refund")
			return
		}
		writeJSON(w, http.StatusOK, transactionResponse{Success: true, Transaction: tx})
	}
}

func VoidHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := svc.Void(r.Context(), mux.Vars(r)["transactionId"])
		if err != nil {
			writeServiceError(w, r, err, "Transaction not found", "Failed to void transaction")
			return
		}
		writeJSON(w, http.StatusOK, transactionResponse{Success: true, Transaction: tx})
	}
}
