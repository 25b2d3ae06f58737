// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves client configuration.

Precedence is CLI flag, then environment variable, then .env file
(loaded via godotenv). Settings:

  - BACKEND_URL (-b): survey backend base URL (required)
  - API_TOKEN (-t): bearer token for authenticated endpoints
  - USER_ID (-u): user whose surveys the dashboard shows
  - SNAPSHOT_DRIVER (--snapshot-driver): sqlite (default) or postgres
  - SNAPSHOT_URL (--snapshot-url): DSN, or file path for sqlite
  - FANOUT_LIMIT (-c): dashboard enrichment concurrency, 0 = unbounded
*/
package cliparse
