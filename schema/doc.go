// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema resolves surveys and loads their question structure.

	loader := schema.NewLoader(api)
	bundle, err := loader.LoadBundle(ctx, "ab12cd")

ResolveSurvey accepts a numeric id or a short code and reports
ErrNotFound (with the identifier) when the backend has no match,
including the empty-array answer from a short-code lookup.

Question order, candidate order, and response order are the backend's
list order, untouched. Missing candidate answers for a choice question
are a valid, renderable state.
*/
package schema
