package proxy

import (
	"encoding/json"
	"net/http"
)

// errorBody is the generic error shape for proxy failures. Callers get no
// structured classification — a 500 with a message is the whole contract.
type errorBody struct {
	Error string `json:"error"`
}

// writeError sends the flat JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}

// writeJSONObject marshals and sends a JSON object (health/info endpoints).
func writeJSONObject(w http.ResponseWriter, status int, obj map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(obj)
}
