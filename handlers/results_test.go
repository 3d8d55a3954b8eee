// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/testutil"
	"github.com/danielhkuo/movie-night/tmdb"
)

// catalogFixture describes what the fake TMDB server returns per movie
type catalogFixture struct {
	title      string
	posterPath string // empty means null poster_path
	providers  string // raw flatrate JSON array, empty means none
}

// newCatalogMux serves movie detail and watch-provider endpoints from
// fixtures, mimicking the TMDB shapes the aggregator consumes
func newCatalogMux(fixtures map[int64]catalogFixture) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /movie/{id}", func(w http.ResponseWriter, r *http.Request) {
		var id int64
		fmt.Sscanf(r.PathValue("id"), "%d", &id)
		f, ok := fixtures[id]
		if !ok {
			http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
			return
		}
		poster := "null"
		if f.posterPath != "" {
			poster = fmt.Sprintf("%q", f.posterPath)
		}
		fmt.Fprintf(w, `{"id": %d, "title": %q, "poster_path": %s}`, id, f.title, poster)
	})

	mux.HandleFunc("GET /movie/{id}/watch/providers", func(w http.ResponseWriter, r *http.Request) {
		var id int64
		fmt.Sscanf(r.PathValue("id"), "%d", &id)
		f := fixtures[id]
		if f.providers == "" {
			fmt.Fprint(w, `{"results": {}}`)
			return
		}
		fmt.Fprintf(w, `{"results": {"BR": {"flatrate": %s}}}`, f.providers)
	})

	return mux
}

func getResults(t *testing.T, handler *ResultsHandler, code string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/results/"+code, nil)
	req.SetPathValue("code", code)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)
	return w
}

func TestGetResults_UnknownCode(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewCatalogServer(t, newCatalogMux(nil))
	handler := NewResultsHandler(db, cfg, tmdb.New(cfg))

	w := getResults(t, handler, "NOPE99")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetResults_ThresholdAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewCatalogServer(t, newCatalogMux(map[int64]catalogFixture{
		1: {title: "Cidade de Deus", posterPath: "/cidade.jpg"},
		3: {title: "Central do Brasil", posterPath: "/central.jpg"},
	}))
	handler := NewResultsHandler(db, cfg, tmdb.New(cfg))

	sessionID := testutil.CreateTestSession(t, db, "ABC123")
	testutil.SetTestVotes(t, db, sessionID, 1, 3)
	testutil.SetTestVotes(t, db, sessionID, 2, 1)
	testutil.SetTestVotes(t, db, sessionID, 3, 2)

	w := getResults(t, handler, "ABC123")
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.EnrichedMovie
	testutil.AssertJSON(t, w, &results)

	// Movie 2 is below threshold; 1 outranks 3
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d: %+v", len(results), results)
	}
	if results[0].MovieID != 1 || results[0].Votes != 3 {
		t.Errorf("Expected movie 1 with 3 votes first, got %+v", results[0])
	}
	if results[1].MovieID != 3 || results[1].Votes != 2 {
		t.Errorf("Expected movie 3 with 2 votes second, got %+v", results[1])
	}

	if results[0].Title != "Cidade de Deus" {
		t.Errorf("Expected enriched title, got %q", results[0].Title)
	}
	if results[0].Poster == nil || *results[0].Poster != "https://image.tmdb.org/t/p/w500/cidade.jpg" {
		t.Errorf("Unexpected poster URL: %v", results[0].Poster)
	}
}

func TestGetResults_NullPoster(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewCatalogServer(t, newCatalogMux(map[int64]catalogFixture{
		7: {title: "Sem Cartaz"},
	}))
	handler := NewResultsHandler(db, cfg, tmdb.New(cfg))

	sessionID := testutil.CreateTestSession(t, db, "ABC123")
	testutil.SetTestVotes(t, db, sessionID, 7, 2)

	w := getResults(t, handler, "ABC123")
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.EnrichedMovie
	testutil.AssertJSON(t, w, &results)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	// A missing poster path is null, never an error
	if results[0].Poster != nil {
		t.Errorf("Expected null poster, got %v", *results[0].Poster)
	}
	if results[0].Error != "" {
		t.Errorf("Null poster must not mark the item failed: %q", results[0].Error)
	}
}

func TestGetResults_Providers(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewCatalogServer(t, newCatalogMux(map[int64]catalogFixture{
		9: {
			title:      "Tropa de Elite",
			posterPath: "/tropa.jpg",
			providers: `[
				{"provider_id": 8, "provider_name": "Netflix", "logo_path": "/netflix.jpg"},
				{"provider_id": 119, "provider_name": "Amazon Prime Video", "logo_path": null}
			]`,
		},
	}))
	handler := NewResultsHandler(db, cfg, tmdb.New(cfg))

	sessionID := testutil.CreateTestSession(t, db, "ABC123")
	testutil.SetTestVotes(t, db, sessionID, 9, 4)

	w := getResults(t, handler, "ABC123")
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.EnrichedMovie
	testutil.AssertJSON(t, w, &results)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	providers := results[0].Providers
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].ID != 8 || providers[0].Name != "Netflix" {
		t.Errorf("Unexpected provider %+v", providers[0])
	}
	if providers[0].Logo == nil || *providers[0].Logo != "https://image.tmdb.org/t/p/w92/netflix.jpg" {
		t.Errorf("Unexpected logo URL: %v", providers[0].Logo)
	}
	if providers[1].Logo != nil {
		t.Errorf("Null logo path must stay null, got %v", *providers[1].Logo)
	}
}

func TestGetResults_PartialEnrichmentFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Movie 3 is missing upstream; movie 1 enriches fine
	cfg := testutil.NewCatalogServer(t, newCatalogMux(map[int64]catalogFixture{
		1: {title: "Cidade de Deus", posterPath: "/cidade.jpg"},
	}))
	handler := NewResultsHandler(db, cfg, tmdb.New(cfg))

	sessionID := testutil.CreateTestSession(t, db, "ABC123")
	testutil.SetTestVotes(t, db, sessionID, 1, 3)
	testutil.SetTestVotes(t, db, sessionID, 3, 2)

	w := getResults(t, handler, "ABC123")

	// One bad lookup must not sink the whole page
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.EnrichedMovie
	testutil.AssertJSON(t, w, &results)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Cidade de Deus" || results[0].Error != "" {
		t.Errorf("Healthy item should be enriched: %+v", results[0])
	}
	if results[1].MovieID != 3 || results[1].Votes != 2 {
		t.Errorf("Failed item must keep its tally: %+v", results[1])
	}
	if results[1].Error == "" {
		t.Error("Failed item should carry an error marker")
	}
	if results[1].Title != "" {
		t.Errorf("Failed item should not have catalog fields: %+v", results[1])
	}
}
