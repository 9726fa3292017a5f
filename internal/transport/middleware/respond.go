package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError matches the REST layer's {"error": "..."} body.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
