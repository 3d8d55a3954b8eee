// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/codes"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// CreateSession handles POST /sessions
// Returns 201 with a fresh session, or 200 with the existing session when
// the code is already taken (create-or-get).
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	code := req.Code
	if code == "" {
		var err error
		code, err = codes.Generate()
		if err != nil {
			slog.Error("failed to generate session code", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
	}

	session := models.Session{
		ID:        uuid.NewString(),
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}

	// Atomic insert-if-absent: the unique code constraint decides the
	// winner, so two clients racing on a never-seen code cannot both
	// create it. The loser falls through to the read below.
	res, err := h.db.Exec(`
		INSERT INTO session (id, code, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO NOTHING
	`, session.ID, session.Code, session.CreatedAt)

	if err != nil {
		slog.Error("failed to insert session", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read insert result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if inserted == 1 {
		slog.Info("session created", "session_id", session.ID, "code", code)
		middleware.JSONResponse(w, http.StatusCreated, session)
		return
	}

	// Code already in use: this is a join, not an error
	existing, err := getSessionByCode(h.db, code)
	if err != nil {
		slog.Error("failed to load existing session", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("session reused", "session_id", existing.ID, "code", code)
	middleware.JSONResponse(w, http.StatusOK, existing)
}

// GetSession handles GET /sessions/{code}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, session)
}

func getSessionByCode(db *sql.DB, code string) (models.Session, error) {
	var s models.Session
	err := db.QueryRow(`
		SELECT id, code, created_at FROM session WHERE code = $1
	`, code).Scan(&s.ID, &s.Code, &s.CreatedAt)
	return s, err
}
