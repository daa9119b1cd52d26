package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/reelmark/reelmark-go/internal/model"
	"github.com/reelmark/reelmark-go/internal/repository"
)

// MovieNotFoundError reports a bookmark operation against a movie id that
// does not exist. The message surfaces verbatim in 400 responses.
type MovieNotFoundError struct {
	ID int64
}

func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("No Movie with ID:%d", e.ID)
}

// BookmarkService toggles membership of a user in a movie's bookmark set.
type BookmarkService struct {
	repo *repository.MovieRepository
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(repo *repository.MovieRepository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// List returns every catalogue entry the user has bookmarked.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]model.Movie, error) {
	return s.repo.ListBookmarkedBy(ctx, userID)
}

// Add bookmarks the movie for the user. Adding twice is idempotent.
func (s *BookmarkService) Add(ctx context.Context, userID, movieID int64) error {
	if err := s.repo.AddBookmark(ctx, movieID, userID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return &MovieNotFoundError{ID: movieID}
		}
		return err
	}
	return nil
}

// Remove drops the user's bookmark on the movie. Removing a bookmark that was
// never set succeeds.
func (s *BookmarkService) Remove(ctx context.Context, userID, movieID int64) error {
	if err := s.repo.RemoveBookmark(ctx, movieID, userID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return &MovieNotFoundError{ID: movieID}
		}
		return err
	}
	return nil
}
