// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submit posts collected answers to the backend, one response
record per answered question.

A Flow moves through Idle → Collecting → Validating → Submitting →
Succeeded | Failed:

	flow := submit.NewFlow(api, survey.ID)
	flow.Collect(questions, values)
	err := flow.Run(ctx)

Blank questions are omitted during Collect. Validation failures
(ErrEmptySubmission, ErrIncompleteDraft) surface before any network
traffic.

The responder id comes from reading GET /response/r_id and adding one —
a known, deliberate race (no server-side reservation). POSTs are
sequential by design; the first failure aborts the remainder and is
reported as *PartialError, since earlier entries are already persisted
and are not rolled back.
*/
package submit
