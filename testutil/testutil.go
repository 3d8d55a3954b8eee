// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Each new pool connection would get its own empty in-memory database;
	// pin the pool to one connection
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3319,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		TMDBToken:    "test-token",
		TMDBBaseURL:  cliparse.DefaultTMDBBaseURL,
	}
}

// NewCatalogServer starts a fake TMDB server and returns a config pointing
// at it. The server is closed via t.Cleanup.
func NewCatalogServer(t *testing.T, handler http.Handler) cliparse.Config {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := GetTestConfig()
	cfg.TMDBBaseURL = srv.URL
	return cfg
}

// CreateTestSession inserts a session with the given code and returns its ID
func CreateTestSession(t *testing.T, conn *sql.DB, code string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO session (id, code, created_at)
		VALUES ($1, $2, $3)
	`, id, code, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return id
}

// SetTestVotes writes a tally row for a (session, movie) pair directly
func SetTestVotes(t *testing.T, conn *sql.DB, sessionID string, movieID int64, votes int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (session_id, movie_id, votes)
		VALUES ($1, $2, $3)
	`, sessionID, movieID, votes)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
