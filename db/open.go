// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/cliparse"
)

// Open connects to the configured database. The driver is selected by
// cfg.DatabaseType ("sqlite" or "postgres"); anything else falls back to
// sqlite, the default.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA foreign_keys = ON",
			"PRAGMA busy_timeout = 5000",
		}
		for _, pragma := range pragmas {
			if _, execErr := conn.Exec(pragma); execErr != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
			}
		}
	}

	return conn, nil
}
