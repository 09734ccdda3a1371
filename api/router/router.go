package router

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/paydemo/braintree-portal/api/bootstrap"
	"github.com/paydemo/braintree-portal/api/config"
)

// NewRouter returns the central HTTP router for the facade. Every /api route
// is a single-shot translation of the request into gateway calls; the static
// file server at / serves the browser client.
func NewRouter() http.Handler {
	// Initialize app dependencies. A failure here is non-fatal: the /api
	// subrouter rejects requests with 503 until a service is wired.
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}
	svc := bootstrap.GetService()
	cfg := config.AppConfig

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, metricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", HealthzHandler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(serviceReadyMiddleware)
	api.HandleFunc("/config", ConfigHandler(cfg)).Methods(http.MethodGet)
	api.HandleFunc("/test-connection", TestConnectionHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/client-token", ClientTokenHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/customers", ListCustomersHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/customer", CreateCustomerHandler(svc)).Methods(http.MethodPost)
	api.HandleFunc("/customer/{id}", FindCustomerHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/customer/{id}/transactions", CustomerTransactionsHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/customer/{id}/subscriptions", CustomerSubscriptionsHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/transaction/{id}", FindTransactionHandler(svc)).Methods(http.MethodGet)
	api.HandleFunc("/checkout", CheckoutHandler(svc)).Methods(http.MethodPost)
	api.HandleFunc("/refund/{transactionId}", RefundHandler(svc)).Methods(http.MethodPost)
	api.HandleFunc("/void/{transactionId}", VoidHandler(svc)).Methods(http.MethodPost)

	staticDir := "./public"
	if cfg != nil && cfg.StaticDir != "" {
		staticDir = cfg.StaticDir
	}
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))

	return cors.AllowAll().Handler(r)
}
