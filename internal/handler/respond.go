package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/reelmark/reelmark-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// writeServiceError is the single translator from service errors to HTTP
// responses. Enumerated client failures keep their exact message as a 400;
// anything unanticipated collapses to a generic 500 so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var notFound *service.MovieNotFoundError

	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWrongPassword):
		writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusBadRequest, messageResponse(notFound.Error()))
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse("Something went wrong"))
	}
}
