// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/handlers"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/tmdb"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// One catalog client shared by every handler that talks to TMDB
	catalog := tmdb.New(cfg)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg, catalog)
	moviesHandler := handlers.NewMoviesHandler(cfg, catalog, nil)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{code}", middleware.WithLogging(sessionHandler.GetSession))

	// Votes
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.SubmitVote))

	// Results
	mux.HandleFunc("GET /results/{code}", middleware.WithLogging(resultsHandler.GetResults))

	// Swipe feed
	mux.HandleFunc("GET /movies/popular", middleware.WithLogging(moviesHandler.GetPopular))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("movie-night API v1"))
	})

	return mux
}
