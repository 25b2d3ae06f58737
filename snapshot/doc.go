// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package snapshot persists aggregated survey views to a local database,
so results can be kept and compared after the fact without the backend.

	store, err := snapshot.Open("sqlite", "survey-scope.db")
	id, err := store.Save(survey.ID, survey.ShortCode, views)
	rec, err := store.Latest(survey.ID)

The sqlite driver (modernc.org/sqlite, pure Go) is the default;
postgres (lib/pq) is available for a shared store. The schema is
created on Open and is safe to re-run.
*/
package snapshot
