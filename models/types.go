package models

import "time"

// VoteThreshold is the minimum accept-vote count for a movie to appear on
// the results page.
const VoteThreshold = 2

// TMDB query defaults
const (
	DefaultLanguage = "pt-BR"
	WatchRegion     = "BR"
)

// Request types

type CreateSessionRequest struct {
	Code string `json:"code,omitempty"`
}

type SubmitVoteRequest struct {
	SessionID string `json:"sessionId"`
	MovieID   int64  `json:"movieId"`
}

// Domain types

type Session struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

type VoteRecord struct {
	SessionID string `json:"sessionId"`
	MovieID   int64  `json:"movieId"`
	Votes     int    `json:"votes"`
}

// Movie is the TMDB listing entry passed through to the swipe feed.
// Field names follow the upstream snake_case payload.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// Response types

type PopularMoviesResponse struct {
	Results []Movie `json:"results"`
}

// Provider is a streaming service carrying a movie on a flatrate plan.
type Provider struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

// EnrichedMovie is one results-page entry: the vote tally joined with
// catalog detail. When the catalog lookup fails, Error is set and the
// catalog fields stay zero; the tally fields are always present.
type EnrichedMovie struct {
	MovieID   int64      `json:"movieId"`
	Votes     int        `json:"votes"`
	Title     string     `json:"title,omitempty"`
	Poster    *string    `json:"poster"`
	Providers []Provider `json:"providers"`
	Error     string     `json:"error,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
