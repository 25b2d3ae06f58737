// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package admin implements the administrative console operations: list
users and surveys, delete a survey with its dependents, delete a user
with their surveys.

The backend exposes flat DELETE endpoints with no cascade of its own,
so cascades run client-side, best-effort, children before parents.
CascadeResult reports what was actually removed.
*/
package admin
