// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Movie Night API server.

Movie Night is a group movie-selection service: friends join a shared
session via a short code, swipe through a feed of popular movies, and the
results page lists every movie that collected enough accept votes,
enriched with streaming availability from TMDB.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=movienight.db TMDB_API_KEY=... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - TMDB_API_KEY (-tmdb-key): TMDB bearer token (catalog calls fail without it)
  - TMDB_BASE_URL (-tmdb-url): Override the TMDB API base

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, votes, results, movies)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - tmdb: Movie catalog client
  - codes: Session code generation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
