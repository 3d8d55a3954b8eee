// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateSessionRequest: code (optional; generated when empty)
  - SubmitVoteRequest: sessionId, movieId

# Response Types

Types for JSON responses:

  - Session: id, code, createdAt
  - VoteRecord: sessionId, movieId, votes
  - PopularMoviesResponse: results (TMDB movie passthrough)
  - EnrichedMovie: results-page entry with title, poster, providers
  - ErrorResponse: error, message

# Domain Types

  - Session: a shareable voting room identified by a short code
  - VoteRecord: per-session, per-movie accept-vote tally
  - Movie: TMDB listing entry (snake_case fields, consumed by the swipe UI)
  - Provider: flatrate streaming offering

# Constants

	VoteThreshold   = 2       // minimum votes to appear in results
	DefaultLanguage = "pt-BR" // injected into TMDB queries
	WatchRegion     = "BR"    // streaming-provider region
*/
package models
