package model

// Movie kinds as stored in the movies table.
const (
	KindMovie  = "movie"
	KindSeries = "series"
)

// Movie represents a catalogue entry (movie or series) in the database.
// BookmarkedBy holds the ids of every user that bookmarked it.
type Movie struct {
	ID           int64
	Title        string
	Year         string
	Rated        string
	Kind         string
	Image        string
	BookmarkedBy []int64
}

// MovieResponse represents a catalogue entry in API responses.
type MovieResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Year         string  `json:"year"`
	Rated        string  `json:"rated"`
	Kind         string  `json:"kind"`
	Image        string  `json:"image"`
	BookmarkedBy []int64 `json:"bookmarkedBy"`
}

// MovieListResponse wraps a list of catalogue entries.
type MovieListResponse struct {
	Data []MovieResponse `json:"data"`
}
