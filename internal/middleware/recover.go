package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Recover converts panics into a generic JSON 500 so an unexpected failure in
// one request never takes the process down or leaks a stack trace.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			slog.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "Internal server error"})
		}()

		next.ServeHTTP(w, r)
	})
}
