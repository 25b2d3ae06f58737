// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL     string
	Token          string
	UserID         int64
	SnapshotDriver string
	SnapshotURL    string
	FanoutLimit    int
}

// ParseFlags resolves configuration from CLI flags, the environment,
// and an optional .env file, in that order of precedence. It returns
// the remaining non-flag arguments (subcommand and its operands).
func ParseFlags(args []string) (Config, []string, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var cfg Config
	var userID string

	fs := flag.NewFlagSet("survey-scope", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "b", "", "Backend base URL")
	fs.StringVar(&cfg.Token, "t", "", "Bearer token (prefer env)")
	fs.StringVar(&userID, "u", "", "User id for dashboard commands")
	fs.StringVar(&cfg.SnapshotDriver, "snapshot-driver", "", "Snapshot store driver (sqlite or postgres)")
	fs.StringVar(&cfg.SnapshotURL, "snapshot-url", "", "Snapshot store DSN or file path")
	fs.IntVar(&cfg.FanoutLimit, "c", -1, "Dashboard enrichment concurrency (0 = unbounded)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	// Fall back to environment variables
	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv("BACKEND_URL")
	}
	if cfg.BackendURL == "" {
		return Config{}, nil, errors.New("backend URL required (use -b or BACKEND_URL env)")
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("API_TOKEN")
	}

	if userID == "" {
		userID = os.Getenv("USER_ID")
	}
	if userID != "" {
		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			return Config{}, nil, errors.New("invalid user id (use -u or USER_ID env)")
		}
		cfg.UserID = id
	}

	if cfg.SnapshotDriver == "" {
		cfg.SnapshotDriver = os.Getenv("SNAPSHOT_DRIVER")
		if cfg.SnapshotDriver == "" {
			cfg.SnapshotDriver = "sqlite"
		}
	}
	if cfg.SnapshotDriver != "sqlite" && cfg.SnapshotDriver != "postgres" {
		return Config{}, nil, errors.New("snapshot driver must be sqlite or postgres")
	}

	if cfg.SnapshotURL == "" {
		cfg.SnapshotURL = os.Getenv("SNAPSHOT_URL")
		if cfg.SnapshotURL == "" {
			cfg.SnapshotURL = "survey-scope.db"
		}
	}

	if cfg.FanoutLimit < 0 {
		if limitStr := os.Getenv("FANOUT_LIMIT"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				return Config{}, nil, errors.New("invalid FANOUT_LIMIT env variable")
			}
			cfg.FanoutLimit = limit
		} else {
			cfg.FanoutLimit = 8 // default cap; unbounded fan-out is opt-in
		}
	}

	return cfg, fs.Args(), nil
}
