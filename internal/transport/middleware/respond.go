package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes a JSON error body in the same shape the REST handlers use.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
