// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import "fmt"

// Empty-state messages, shown instead of a viewer that has nothing to
// page or chart.
const (
	EmptyTextMessage = "No text responses yet."
	NoChoicesMessage = "No answer choices found."
	NoResponsesYet   = "No responses yet."
)

// TextCursor pages through text responses one at a time with
// wrap-around navigation. Next and Prev are no-ops on an empty cursor;
// the empty state is rendered via Empty, never by advancing.
type TextCursor struct {
	entries []string
	idx     int
}

func NewTextCursor(entries []string) *TextCursor {
	return &TextCursor{entries: entries}
}

func (c *TextCursor) Empty() bool { return len(c.entries) == 0 }
func (c *TextCursor) Len() int    { return len(c.entries) }
func (c *TextCursor) Index() int  { return c.idx }

// Current returns the entry under the cursor; ok is false when there
// are no entries.
func (c *TextCursor) Current() (string, bool) {
	if c.Empty() {
		return "", false
	}
	return c.entries[c.idx], true
}

func (c *TextCursor) Next() {
	if c.Empty() {
		return
	}
	c.idx = (c.idx + 1) % len(c.entries)
}

func (c *TextCursor) Prev() {
	if c.Empty() {
		return
	}
	c.idx = (c.idx - 1 + len(c.entries)) % len(c.entries)
}

// Counter renders the position indicator, e.g. "3 / 7".
func (c *TextCursor) Counter() string {
	if c.Empty() {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", c.idx+1, len(c.entries))
}

// ChartKind names a rendering of a categorical series.
type ChartKind string

const (
	ChartBar      ChartKind = "bar"
	ChartPie      ChartKind = "pie"
	ChartDoughnut ChartKind = "doughnut"
	ChartLine     ChartKind = "line"
)

// chartKinds is the cycle order of the kind toggle.
var chartKinds = []ChartKind{ChartBar, ChartPie, ChartDoughnut, ChartLine}

// ChartSeries holds an aggregated label/count series plus the currently
// selected chart kind. Toggling kinds re-renders from the held series;
// it never re-fetches or re-aggregates.
type ChartSeries struct {
	labels []string
	counts []int
	kind   int
}

func NewChartSeries(labels []string, counts []int) *ChartSeries {
	return &ChartSeries{labels: labels, counts: counts}
}

func (s *ChartSeries) Labels() []string { return s.labels }
func (s *ChartSeries) Counts() []int    { return s.counts }
func (s *ChartSeries) Empty() bool      { return len(s.labels) == 0 }

func (s *ChartSeries) Kind() ChartKind {
	return chartKinds[s.kind]
}

func (s *ChartSeries) NextKind() ChartKind {
	s.kind = (s.kind + 1) % len(chartKinds)
	return s.Kind()
}

func (s *ChartSeries) PrevKind() ChartKind {
	s.kind = (s.kind - 1 + len(chartKinds)) % len(chartKinds)
	return s.Kind()
}

// Total sums the counts.
func (s *ChartSeries) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}
