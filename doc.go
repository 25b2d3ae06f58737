// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Survey-Scope is a terminal front end for a survey-management REST
backend: it lists a user's surveys, shows survey questions, browses
aggregated response data, submits answers, and runs the admin console.

# Running

Point it at the backend and pick a command:

	BACKEND_URL=https://surveys.example.com survey-scope data ab12cd

Or with flags:

	survey-scope -b https://surveys.example.com -t $TOKEN dashboard -u 7

# Configuration

See package cliparse: BACKEND_URL (-b) is required; API_TOKEN (-t),
USER_ID (-u), SNAPSHOT_DRIVER/SNAPSHOT_URL, and FANOUT_LIMIT (-c) are
optional.

# Architecture

Small packages with injected dependencies:

  - apiclient: HTTP access with degrade-to-nil error handling
  - session: bearer token and signed-in user, passed explicitly
  - schema: survey resolution and question/candidate loading
  - aggregate: response tabulation into question views
  - view: cursor and chart-kind state for presentation
  - submit: the sequential response submission flow
  - dashboard: per-survey count enrichment fan-out
  - admin: user/survey listing and cascade deletes
  - snapshot: local persistence of aggregated views
  - console: terminal rendering and the interactive browser

See package documentation for each component.
*/
package main
