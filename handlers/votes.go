// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /votes
// First vote for a (session, movie) pair creates the tally at 1; every
// later vote increments it in place.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SessionID == "" || req.MovieID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId and movieId are required")
		return
	}

	// Single-statement upsert: the store serializes concurrent increments
	// for the same pair, so counts are never lost. No app-level locking -
	// it would mean nothing across multiple server instances anyway.
	var record models.VoteRecord
	err := h.db.QueryRow(`
		INSERT INTO vote (session_id, movie_id, votes)
		VALUES ($1, $2, 1)
		ON CONFLICT (session_id, movie_id) DO UPDATE SET votes = vote.votes + 1
		RETURNING session_id, movie_id, votes
	`, req.SessionID, req.MovieID).Scan(&record.SessionID, &record.MovieID, &record.Votes)

	if err != nil {
		slog.Error("failed to upsert vote", "error", err, "session_id", req.SessionID, "movie_id", req.MovieID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "session_id", record.SessionID, "movie_id", record.MovieID, "votes", record.Votes)

	middleware.JSONResponse(w, http.StatusOK, record)
}

// listVotesBySession returns the session's tallies at or above minVotes,
// highest first. Movie ID breaks ties so the order is stable.
func listVotesBySession(db *sql.DB, sessionID string, minVotes int) ([]models.VoteRecord, error) {
	rows, err := db.Query(`
		SELECT session_id, movie_id, votes
		FROM vote
		WHERE session_id = $1 AND votes >= $2
		ORDER BY votes DESC, movie_id
	`, sessionID, minVotes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.VoteRecord{}
	for rows.Next() {
		var rec models.VoteRecord
		if err := rows.Scan(&rec.SessionID, &rec.MovieID, &rec.Votes); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
