package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/paydemo/braintree-portal/api/bootstrap"
	"github.com/paydemo/braintree-portal/api/config"
	"github.com/paydemo/braintree-portal/api/router"
)

func main() {
	if err := bootstrap.Ensure(); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	cfg := config.AppConfig

	handler := router.NewRouter()
	addr := ":" + cfg.HTTPPort

	slog.Info("braintree portal listening",
		"addr", addr,
		"environment", cfg.Environment,
		"static_dir", cfg.StaticDir,
	)
	log.Fatal(http.ListenAndServe(addr, handler))
}
