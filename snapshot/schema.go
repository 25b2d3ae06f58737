// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package snapshot

const schema = `
-- Aggregated survey views captured at a point in time
CREATE TABLE IF NOT EXISTS snapshot (
    id TEXT PRIMARY KEY,
    survey_id BIGINT NOT NULL,
    short_code TEXT NOT NULL,
    taken_at TEXT NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshot_survey_id ON snapshot(survey_id);
CREATE INDEX IF NOT EXISTS idx_snapshot_taken_at ON snapshot(survey_id, taken_at);
`
