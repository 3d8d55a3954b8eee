// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Movie Night API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Sessions:

	POST /sessions        - Create or join a session (201 new, 200 existing)
	GET  /sessions/{code} - Look up a session by code

Voting:

	POST /votes - Record an accept vote (atomic upsert)

Results:

	GET /results/{code} - Threshold-filtered, TMDB-enriched results

Swipe feed:

	GET /movies/popular - Shuffled popular movies (cacheable for 1h)

All routes are wrapped with request logging. CORS is applied to the whole
mux in main.
*/
package router
