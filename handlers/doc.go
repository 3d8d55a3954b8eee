// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Movie Night API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - SessionHandler: Session creation and lookup
  - VoteHandler: Accept-vote submission (atomic upsert)
  - ResultsHandler: Threshold-filtered results with TMDB enrichment
  - MoviesHandler: Shuffled popular-movies swipe feed

Handlers that touch the database accept *sql.DB and Config:

	sessionHandler := handlers.NewSessionHandler(db, cfg)

ResultsHandler and MoviesHandler additionally take the shared *tmdb.Client.

# Voting Flow

	POST /sessions        → CreateSession (201 new, 200 when code exists)
	GET  /sessions/{code} → GetSession
	GET  /movies/popular  → GetPopular (the swipe deck)
	POST /votes           → SubmitVote (create at 1 or increment)
	GET  /results/{code}  → GetResults

# Vote Upsert

SubmitVote uses a single INSERT ... ON CONFLICT DO UPDATE ... RETURNING
statement. The (session_id, movie_id) primary key makes concurrent votes
for the same pair serialize in the store - no lost updates, no application
locks.

# Results Enrichment

GetResults filters tallies to votes >= models.VoteThreshold, then fans out
one goroutine per qualifying movie to fetch detail and BR flatrate watch
providers. A failed lookup marks that item with an error field; the rest
of the page still renders.
*/
package handlers
