package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/reelmark/reelmark-go/internal/middleware"
	"github.com/reelmark/reelmark-go/internal/service"
)

// BookmarkHandler handles HTTP requests for per-user bookmarks.
type BookmarkHandler struct {
	service *service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: svc}
}

// HandleList handles GET /api/bookmark/ requests.
func (h *BookmarkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("Unauthorized"))
		return
	}

	movies, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(movies))
}

// HandleAdd handles GET /api/bookmark/add/{id} requests.
func (h *BookmarkHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("Unauthorized"))
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Add(r.Context(), userID, movieID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Movie Bookmarked!"))
}

// HandleRemove handles GET /api/bookmark/remove/{id} requests.
func (h *BookmarkHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("Unauthorized"))
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, movieID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Bookmark Removed!"))
}

// movieIDParam parses the {id} route param. A non-numeric id cannot name an
// existing movie, so it gets the same not-found response the service would
// produce, echoing the raw value.
func movieIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse("No Movie with ID:"+raw))
		return 0, false
	}
	return id, true
}
