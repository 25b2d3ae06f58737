// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console renders survey data to a terminal.

Render functions write to an io.Writer and carry no state, so they are
tested against byte buffers. Browser is the interactive data page: it
holds per-question cursors and chart series built once from aggregated
views, and redraws purely from that state as the user navigates.
*/
package console
