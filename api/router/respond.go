package router

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app "github.com/paydemo/braintree-portal/api/services/braintree/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps the app layer's typed errors onto HTTP statuses:
// not-found to 404, gateway rejection to 400 with the gateway's message and
// structured errors, anything else to 500 with failMsg. The underlying error
// is logged, never sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, failMsg string) {
	if notFoundMsg == "" {
		notFoundMsg = "Not found"
	}
	var rej *app.RejectionError
	switch {
	case errors.Is(err, app.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundMsg})
	case errors.As(err, &rej):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: rej.Message, Errors: rej.Details})
	default:
		slog.Error(failMsg, "err", err, "path", r.URL.Path, "request_id", requestID(r))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: failMsg})
	}
}
