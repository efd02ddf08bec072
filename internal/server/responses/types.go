// Package responses defines the JSON envelope and payloads of the preview
// server API.
package responses

import (
	"encoding/json"
	"net/http"
	"time"

	"git.home.luguber.info/inful/docnav/internal/menu"
)

// Response represents a standard API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Pages     int       `json:"pages"`
	IndexedAt time.Time `json:"indexed_at"`
}

// MenuResponse is the payload of GET /api/menu.
type MenuResponse struct {
	Path     string      `json:"path"`
	Language string      `json:"language"`
	OpenKeys []string    `json:"open_keys"`
	Items    []menu.Node `json:"items"`
}

// ToggleResponse is the payload of the outline toggle endpoint.
type ToggleResponse struct {
	Applied bool `json:"applied"`
	Session any  `json:"session"`
}

// Success writes data in a success envelope.
func Success(w http.ResponseWriter, code int, data any) {
	write(w, code, Response{Success: true, Data: data})
}

// Error writes message in an error envelope.
func Error(w http.ResponseWriter, code int, message string) {
	write(w, code, Response{Success: false, Error: message})
}

func write(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
