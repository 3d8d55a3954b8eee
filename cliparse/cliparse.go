package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultTMDBBaseURL is the production TMDB API root. Tests point this at a
// local fake server instead.
const DefaultTMDBBaseURL = "https://api.themoviedb.org/3"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	TMDBToken    string
	TMDBBaseURL  string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("movie-night", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// TMDB settings (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TMDBToken, "tmdb-key", "", "TMDB bearer token (prefer env)")
	fs.StringVar(&cfg.TMDBBaseURL, "tmdb-url", "", "TMDB API base URL")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	// TMDB token is deliberately not required here: catalog calls fail at
	// request time when it is missing, so the server can still start for
	// database-only work.
	if cfg.TMDBToken == "" {
		cfg.TMDBToken = os.Getenv("TMDB_API_KEY")
	}

	if cfg.TMDBBaseURL == "" {
		cfg.TMDBBaseURL = os.Getenv("TMDB_BASE_URL")
		if cfg.TMDBBaseURL == "" {
			cfg.TMDBBaseURL = DefaultTMDBBaseURL
		}
	}

	return cfg, nil
}
