// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tmdb is the client for The Movie Database (TMDB) API.

# Construction

The client is built once from configuration and injected into handlers:

	catalog := tmdb.New(cfg)

# Generic Fetch

Fetch is the raw operation every helper goes through:

	resp, err := catalog.Fetch(ctx, "/movie/popular?page=1", nil)

It injects language=pt-BR when the caller did not supply a language
parameter, attaches the bearer token, and sets a Cache-Control max-age
hint (default 3600s) for intermediary caches. A missing token fails the
call with ErrMissingToken. Responses are never retried.

# Typed Helpers

	movies, err := catalog.Popular(ctx, 1)
	detail, err := catalog.Movie(ctx, 550)
	offers, err := catalog.FlatrateProviders(ctx, 550, "BR")

# Image URLs

TMDB returns relative image paths. PosterURL and LogoURL assemble full
CDN URLs (w500 posters, w92 logos); a nil path stays nil rather than
becoming an error.
*/
package tmdb
