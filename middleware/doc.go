// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps individual handlers and logs method, path and duration
via log/slog:

	mux.HandleFunc("POST /votes", middleware.WithLogging(handler.SubmitVote))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	middleware.ParseJSONBody(r, &req)

ErrorResponse produces the uniform error shape:

	{"error": "Not Found", "message": "Session not found"}

# CORS

CORS wraps the whole mux in main; the swipe UI is served from a separate
origin in development.
*/
package middleware
