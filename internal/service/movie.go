package service

import (
	"context"

	"github.com/reelmark/reelmark-go/internal/model"
	"github.com/reelmark/reelmark-go/internal/repository"
)

// MovieService serves catalogue listings.
type MovieService struct {
	repo *repository.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo *repository.MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

// All returns every catalogue entry.
func (s *MovieService) All(ctx context.Context) ([]model.Movie, error) {
	return s.repo.ListAll(ctx)
}

// Series returns catalogue entries of kind "series".
func (s *MovieService) Series(ctx context.Context) ([]model.Movie, error) {
	return s.repo.ListByKind(ctx, model.KindSeries)
}

// Movies returns catalogue entries of kind "movie".
func (s *MovieService) Movies(ctx context.Context) ([]model.Movie, error) {
	return s.repo.ListByKind(ctx, model.KindMovie)
}
