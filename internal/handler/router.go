package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/reelmark/reelmark-go/internal/middleware"
)

// NewRouter builds the full route table. Interceptors run in order: logging,
// panic recovery, CORS, then the auth gate on protected groups; any of them
// can short-circuit with a terminal response before the handler.
func NewRouter(auth *AuthHandler, movie *MovieHandler, bookmark *BookmarkHandler, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Set before mounting subrouters so they inherit it.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		msg := fmt.Sprintf("Method %s not allowed on %s", req.Method, req.URL.Path)
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse(msg))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", auth.HandleRegister)
		r.Post("/login", auth.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(jwtSecret))
			r.Post("/user", auth.HandleUser)
		})
	})

	r.Route("/api/movie", func(r chi.Router) {
		r.Get("/", movie.HandleAll)
		r.Get("/series", movie.HandleSeries)
		r.Get("/movies", movie.HandleMovies)
	})

	r.Route("/api/bookmark", func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))
		r.Get("/", bookmark.HandleList)
		r.Get("/add/{id}", bookmark.HandleAdd)
		r.Get("/remove/{id}", bookmark.HandleRemove)
	})

	return r
}
