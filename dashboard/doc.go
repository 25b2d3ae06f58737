// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashboard assembles the "my surveys" overview: each survey a
user owns, enriched with its question and response counts, plus
totals.

Enrichment is a per-survey fan-out of two count requests, run
concurrently under an errgroup. The concurrency limit comes from
configuration (FANOUT_LIMIT, default 8); unbounded fan-out is fine for
a handful of surveys and not for thousands, so the cap defaults on.
*/
package dashboard
