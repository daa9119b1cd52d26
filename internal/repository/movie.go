package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/reelmark/reelmark-go/internal/model"
)

var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository handles catalogue reads and bookmark mutations. Bookmarks
// live in a join table keyed by (movie_id, user_id), so an identity can
// appear at most once per movie.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new MovieRepository.
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

const listQuery = `
	SELECT m.id, m.title, m.year, m.rated, m.kind, m.image,
		COALESCE(GROUP_CONCAT(b.user_id ORDER BY b.user_id), '')
	FROM movies m
	LEFT JOIN bookmarks b ON b.movie_id = m.id`

// ListAll retrieves every catalogue entry, movies and series alike.
func (r *MovieRepository) ListAll(ctx context.Context) ([]model.Movie, error) {
	query := listQuery + ` GROUP BY m.id ORDER BY m.id`
	return r.list(ctx, query)
}

// ListByKind retrieves catalogue entries of a single kind ("movie" or "series").
func (r *MovieRepository) ListByKind(ctx context.Context, kind string) ([]model.Movie, error) {
	query := listQuery + ` WHERE m.kind = ? GROUP BY m.id ORDER BY m.id`
	return r.list(ctx, query, kind)
}

// ListBookmarkedBy retrieves every catalogue entry bookmarked by the given user.
func (r *MovieRepository) ListBookmarkedBy(ctx context.Context, userID int64) ([]model.Movie, error) {
	query := listQuery + `
		WHERE m.id IN (SELECT movie_id FROM bookmarks WHERE user_id = ?)
		GROUP BY m.id ORDER BY m.id`
	return r.list(ctx, query, userID)
}

func (r *MovieRepository) list(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []model.Movie
	for rows.Next() {
		var m model.Movie
		var bookmarkedBy string
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Year, &m.Rated, &m.Kind, &m.Image, &bookmarkedBy,
		); err != nil {
			return nil, err
		}
		m.BookmarkedBy, err = splitIDs(bookmarkedBy)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}

	return movies, rows.Err()
}

// AddBookmark adds the user to the movie's bookmark set in a single atomic
// statement. Adding an already-present bookmark is a no-op; a missing movie
// is ErrMovieNotFound.
func (r *MovieRepository) AddBookmark(ctx context.Context, movieID, userID int64) error {
	query := `INSERT IGNORE INTO bookmarks (movie_id, user_id)
		SELECT id, ? FROM movies WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// Zero rows means either the movie does not exist or the bookmark was
	// already present; only the probe can tell the two apart.
	if affected == 0 {
		return r.requireMovie(ctx, movieID)
	}

	return nil
}

// RemoveBookmark removes the user from the movie's bookmark set. Removing a
// bookmark that was never set is a no-op; a missing movie is ErrMovieNotFound.
func (r *MovieRepository) RemoveBookmark(ctx context.Context, movieID, userID int64) error {
	query := `DELETE FROM bookmarks WHERE movie_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, movieID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return r.requireMovie(ctx, movieID)
	}

	return nil
}

// requireMovie returns ErrMovieNotFound when no movie with the id exists.
// Movies are never deleted, so the probe cannot race a bookmark mutation.
func (r *MovieRepository) requireMovie(ctx context.Context, movieID int64) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE id = ?)`
	if err := r.db.QueryRowContext(ctx, query, movieID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrMovieNotFound
	}
	return nil
}

// splitIDs parses a GROUP_CONCAT id list like "3,17,42" into int64s.
func splitIDs(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
