// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session carries the signed-in identity for one client run.

A Session exposes a narrow capability surface:

	token, ok := sess.CurrentToken()
	user, ok := sess.CurrentUser()

and is passed explicitly into the API client and any command that needs
identity. There is no package-level state.

Auth flows (Login, Register) talk to the backend's /auth endpoints
through the Poster interface, which apiclient.Client satisfies.
*/
package session
