package handler

import (
	"net/http"

	"github.com/reelmark/reelmark-go/internal/model"
	"github.com/reelmark/reelmark-go/internal/service"
)

// MovieHandler handles HTTP requests for catalogue listings.
type MovieHandler struct {
	service *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{service: svc}
}

// HandleAll handles GET /api/movie/ requests.
func (h *MovieHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("Error fetching all data"))
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(movies))
}

// HandleSeries handles GET /api/movie/series requests.
func (h *MovieHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.Series(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("Error fetching series data"))
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(series))
}

// HandleMovies handles GET /api/movie/movies requests.
func (h *MovieHandler) HandleMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Movies(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("Error fetching movies data"))
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(movies))
}

// toListResponse converts movies into the {data: [...]} response envelope.
func toListResponse(movies []model.Movie) model.MovieListResponse {
	data := make([]model.MovieResponse, len(movies))
	for i, m := range movies {
		data[i] = model.MovieResponse{
			ID:           m.ID,
			Title:        m.Title,
			Year:         m.Year,
			Rated:        m.Rated,
			Kind:         m.Kind,
			Image:        m.Image,
			BookmarkedBy: m.BookmarkedBy,
		}
	}
	return model.MovieListResponse{Data: data}
}
