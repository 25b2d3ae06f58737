// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view adapts aggregated question data for presentation.

TextCursor pages one text response at a time with cyclic navigation:
Next on the last entry wraps to the first, Prev on the first wraps to
the last, and both are guarded no-ops when there are no entries.

ChartSeries pairs an aggregated label/count series with a chart kind
(bar, pie, doughnut, line) that can be cycled freely; kind changes are
pure state, so a renderer redraws from data it already has.
*/
package view
