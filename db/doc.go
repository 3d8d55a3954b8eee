// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection setup and schema creation.

# Opening a Connection

Open selects the driver from configuration:

	conn, err := db.Open(cfg)

DATABASE_TYPE=sqlite (the default) uses the cgo-free modernc.org/sqlite
driver and applies the standard pragmas (WAL journal, foreign keys, busy
timeout). DATABASE_TYPE=postgres uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is restricted to the dialect both drivers share.

# Tables

The schema includes:

  - session: Voting room identified by a short unique code
  - vote: Accept-vote tally per (session, movie) pair

# Relationships

	session 1──* vote

The (session_id, movie_id) primary key on vote is the core invariant: at
most one tally row exists per pair, and the upsert in handlers increments
it atomically.

# Indexes

Performance indexes on:

  - session.code (unique)
  - vote.session_id
*/
package db
