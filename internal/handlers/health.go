package handlers

import "net/http"

// Health handles GET /health. The service has no dependencies to probe, so
// being able to answer is the whole check.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
