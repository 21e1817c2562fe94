// Package responseformat encodes API responses as JSON or MessagePack,
// selected per request with the format query parameter.
package responseformat

import (
	"encoding/json"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Formatter handles encoding and writing responses in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WriteResponse writes the response in the appropriate format based on the
// query parameter. JSON is the default format; MessagePack is used when
// format=msgpack is specified.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any, headers map[string]string) error {
	for k, v := range headers {
		w.Header().Set(k, v)
	}

	// Always set CORS header
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if req.URL.Query().Get("format") == "msgpack" {
		return f.writeMsgPack(w, data)
	}

	return f.writeJSON(w, data)
}

// WriteError writes an error payload with the given HTTP status, honoring
// the requested format
func (f *Formatter) WriteError(w http.ResponseWriter, req *http.Request, status int, message string) error {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	payload := map[string]string{"error": message}
	if req.URL.Query().Get("format") == "msgpack" {
		w.Header().Set("Content-Type", "application/msgpack")
		w.WriteHeader(status)
		encoded, err := msgpack.Marshal(payload)
		if err != nil {
			return err
		}
		_, err = w.Write(encoded)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func (f *Formatter) writeJSON(w http.ResponseWriter, data any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) writeMsgPack(w http.ResponseWriter, data any) error {
	w.Header().Set("Content-Type", "application/msgpack")
	encoded, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}
