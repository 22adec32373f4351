package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errResponse is the uniform error payload for every non-2xx response.
type errResponse struct {
	Error string `json:"error" validate:"required"`
}

func errorBody(msg string) errResponse { return errResponse{Error: msg} }

// writeJSON sends v with the given status. An encode failure at this
// point happens after the status line is already out, so it is logged
// and the response left as-is.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Int("status", status), slog.String("error", err.Error()))
	}
}
