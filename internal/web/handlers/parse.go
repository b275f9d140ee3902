// Package handlers implements the demo API endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nycgeo/nycaddr/internal/parser"
)

// ParseHandler handles the address parsing endpoints.
type ParseHandler struct {
	Debug bool
}

// ParseRequest is the POST body for batch parsing.
type ParseRequest struct {
	Addresses []string `json:"addresses"`
}

// ParseAddress parses a single address given as the q query parameter.
// The response omits absent components rather than sending empty values.
func (h *ParseHandler) ParseAddress(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}

	result := parser.ParseDebug(h.Debug, q)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ParseBatch parses a JSON array of addresses in one request.
func (h *ParseHandler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	results := make([]parser.Result, len(req.Addresses))
	for i, addr := range req.Addresses {
		results[i] = parser.Parse(addr)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// Health reports server liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
