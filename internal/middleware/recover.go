package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Recover converts a handler panic into a 500 response with the generic
// error body, so internal details never reach the client.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "error", rec, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"message": "Something went wrong"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
