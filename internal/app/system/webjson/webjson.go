// internal/app/system/webjson/webjson.go

// Package webjson holds the JSON response helpers used at the API boundary.
// Handlers respond through these so the wire shape stays uniform: payloads
// are encoded as-is, errors are {"message": "..."} with the given status.
package webjson

import (
	"encoding/json"
	"net/http"
)

// Respond writes payload as JSON with the given status code.
func Respond(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// Error writes a {"message": ...} error body with the given status code.
func Error(w http.ResponseWriter, code int, message string) {
	Respond(w, code, map[string]string{"message": message})
}

// Decode reads the request body as JSON into dst. Unknown fields are
// rejected so typos in client payloads surface as 400s instead of being
// silently dropped.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
