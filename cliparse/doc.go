// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables.

# Settings

	Flag        Env              Default
	-p          PORT             3319
	-d          DATABASE_URL     (required)
	-t          DATABASE_TYPE    sqlite
	-tmdb-key   TMDB_API_KEY     (empty; catalog calls fail without it)
	-tmdb-url   TMDB_BASE_URL    https://api.themoviedb.org/3

The TMDB token is intentionally optional at startup. The catalog client
checks it per call, so a misconfigured token surfaces as an upstream
failure on catalog endpoints rather than preventing the server from
serving session and vote traffic.
*/
package cliparse
