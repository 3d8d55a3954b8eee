// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/tmdb"
)

type ResultsHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	catalog *tmdb.Client
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, catalog *tmdb.Client) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, catalog: catalog}
}

// GetResults handles GET /results/{code}
// Returns every movie in the session with votes >= models.VoteThreshold,
// highest tally first, enriched with TMDB title, poster and BR flatrate
// streaming providers.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	session, err := getSessionByCode(h.db, code)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to query session", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	qualifying, err := listVotesBySession(h.db, session.ID, models.VoteThreshold)
	if err != nil {
		slog.Error("failed to query votes", "error", err, "session_id", session.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Per-movie fan-out. Enrichment failures stay on the item; only the
	// session/vote reads above can fail the whole request.
	results := make([]models.EnrichedMovie, len(qualifying))
	var wg sync.WaitGroup
	for i, rec := range qualifying {
		wg.Add(1)
		go func(i int, rec models.VoteRecord) {
			defer wg.Done()
			results[i] = h.enrich(r.Context(), rec)
		}(i, rec)
	}
	wg.Wait()

	middleware.JSONResponse(w, http.StatusOK, results)
}

// enrich joins one vote tally with catalog detail. A failed lookup marks
// the item instead of sinking the rest of the results page.
func (h *ResultsHandler) enrich(ctx context.Context, rec models.VoteRecord) models.EnrichedMovie {
	item := models.EnrichedMovie{
		MovieID:   rec.MovieID,
		Votes:     rec.Votes,
		Providers: []models.Provider{},
	}

	detail, err := h.catalog.Movie(ctx, rec.MovieID)
	if err != nil {
		slog.Warn("movie enrichment failed", "movie_id", rec.MovieID, "error", err)
		item.Error = "catalog lookup failed"
		return item
	}
	item.Title = detail.Title
	item.Poster = tmdb.PosterURL(detail.PosterPath)

	providers, err := h.catalog.FlatrateProviders(ctx, rec.MovieID, models.WatchRegion)
	if err != nil {
		slog.Warn("provider enrichment failed", "movie_id", rec.MovieID, "error", err)
		item.Error = "catalog lookup failed"
		return item
	}
	for _, p := range providers {
		item.Providers = append(item.Providers, models.Provider{
			ID:   p.ProviderID,
			Name: p.ProviderName,
			Logo: tmdb.LogoURL(p.LogoPath),
		})
	}

	return item
}
