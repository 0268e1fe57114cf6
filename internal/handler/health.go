package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Company   string  `json:"company"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Health handles GET /health. It reports liveness with process uptime and
// turns unreachable storage into a 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	msg := "Server is running"
	ok := true
	if err := h.db.Ping(r.Context()); err != nil {
		status = http.StatusServiceUnavailable
		msg = "Database unreachable"
		ok = false
	}

	writeJSON(w, status, healthResponse{
		Success:   ok,
		Message:   msg,
		Company:   h.company,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Seconds(),
	})
}
