// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient wraps HTTP access to the survey REST backend.

# Degradation Contract

Get, GetList, and Send never return errors. A failed request — non-2xx
status, transport failure, or a body that is not valid JSON — yields
nil (or an empty list where an array was expected) and a Warn log.
Callers treat nil as "absent", not as a reason to abort. The one
exception is survey resolution, which package schema validates
explicitly.

Do is the validated variant. Response submission and admin deletes use
it because a failure there must be reported to the user with its cause:

	raw, err := api.Do(ctx, "POST", "/response/7", body)

Errors from Do wrap ErrRequestFailed.

# Authentication

When the injected TokenSource holds a token, every request carries
"Authorization: Bearer <token>".

# What this client never does

Retry, cache, or time out on its own. One attempt per call; deadlines
and cancellation arrive through the context.
*/
package apiclient
