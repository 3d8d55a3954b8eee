// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/tmdb"
)

// popularPageCount is how many upstream pages feed one swipe deck.
const popularPageCount = 3

// Genres excluded from the swipe feed. 16 is TMDB's animation genre.
var excludedGenres = []int64{16}

type MoviesHandler struct {
	cfg     cliparse.Config
	catalog *tmdb.Client

	// rand.Rand is not goroutine-safe; mu guards it across requests
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMoviesHandler builds the popular-feed handler. rng drives the deck
// shuffle; tests inject a seeded source for a deterministic order, nil
// gets a time-seeded one.
func NewMoviesHandler(cfg cliparse.Config, catalog *tmdb.Client, rng *rand.Rand) *MoviesHandler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MoviesHandler{cfg: cfg, catalog: catalog, rng: rng}
}

// GetPopular handles GET /movies/popular
// Fetches three pages of the TMDB popular listing concurrently, drops
// excluded genres, shuffles the rest, and marks the response cacheable.
func (h *MoviesHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	pages := make([][]models.Movie, popularPageCount)
	errs := make([]error, popularPageCount)

	var wg sync.WaitGroup
	for i := 0; i < popularPageCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pages[i], errs[i] = h.catalog.Popular(r.Context(), i+1)
		}(i)
	}
	wg.Wait()

	var all []models.Movie
	for i := 0; i < popularPageCount; i++ {
		if errs[i] != nil {
			slog.Error("failed to fetch popular movies", "page", i+1, "error", errs[i])
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch popular movies")
			return
		}
		all = append(all, pages[i]...)
	}

	filtered := make([]models.Movie, 0, len(all))
	for _, m := range all {
		if !hasExcludedGenre(m) {
			filtered = append(filtered, m)
		}
	}

	h.shuffle(filtered)

	w.Header().Set("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=7200")
	middleware.JSONResponse(w, http.StatusOK, models.PopularMoviesResponse{Results: filtered})
}

// shuffle permutes the deck in place (Fisher-Yates).
func (h *MoviesHandler) shuffle(movies []models.Movie) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(movies) - 1; i > 0; i-- {
		j := h.rng.Intn(i + 1)
		movies[i], movies[j] = movies[j], movies[i]
	}
}

func hasExcludedGenre(m models.Movie) bool {
	for _, id := range m.GenreIDs {
		for _, excluded := range excludedGenres {
			if id == excluded {
				return true
			}
		}
	}
	return false
}
