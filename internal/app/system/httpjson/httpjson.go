// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the JSON response helpers shared by every API
// handler. Responses are either the resource payload or an {"error": "..."}
// envelope; internal error detail is logged server-side and never leaked.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// errorResponse is the error envelope returned to clients.
type errorResponse struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an {"error": msg} envelope with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorResponse{Error: msg})
}

// Internal writes the generic 500 response. The real error is expected to
// have been logged by the caller already.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}

// maxBodyBytes caps request bodies; the certificate image upload is the
// largest expected payload (base64-encoded PNG).
const maxBodyBytes = 8 << 20

// Decode reads the request body into dst, rejecting oversized bodies.
// Unknown fields are ignored: checkout callbacks carry extra gateway fields,
// and update requests may echo back full resources. Returns a client-facing
// error message on failure.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid JSON body")
	}
	return nil
}
