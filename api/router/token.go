package router

import (
	"net/http"
	"time"

	"github.com/paydemo/braintree-portal/api/config"
	app "github.com/paydemo/braintree-portal/api/services/braintree/app"
)

func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "braintree-portal",
			"ts":      time.Now().UTC(),
		})
	}
}

// ConfigHandler returns the environment-sourced client configuration. It
// never fails: the values are read once at startup.
func ConfigHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := configResponse{Success: true}
		if cfg != nil {
			resp.CustomerID = cfg.DefaultCustomerID
			resp.Environment = cfg.Environment
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// TestConnectionHandler validates the configured credentials against the
// gateway. Unlike the other routes, the underlying failure message is
// surfaced: reporting it is the point of the endpoint.
func TestConnectionHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env, err := svc.TestConnection(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, connectionResponse{Success: true, Environment: env})
	}
}

// ClientTokenHandler issues a client token, scoped to the customerId query
// parameter when present.
func ClientTokenHandler(svc app.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := svc.GenerateClientToken(r.Context(), r.URL.Query().Get("customerId"))
		if err != nil {
			writeServiceError(w, r, err, "", "Failed to generate client token")
			return
		}
		writeJSON(w, http.StatusOK, tokenResponse{Success: true, ClientToken: token})
	}
}
