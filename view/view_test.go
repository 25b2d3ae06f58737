// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import "testing"

func TestTextCursorNavigation(t *testing.T) {
	c := NewTextCursor([]string{"A", "B"})

	if got, _ := c.Current(); got != "A" {
		t.Errorf("Current() = %q, want A", got)
	}
	if c.Counter() != "1 / 2" {
		t.Errorf("Counter() = %q, want 1 / 2", c.Counter())
	}

	c.Next()
	if got, _ := c.Current(); got != "B" {
		t.Errorf("After Next(), Current() = %q, want B", got)
	}
	if c.Counter() != "2 / 2" {
		t.Errorf("Counter() = %q, want 2 / 2", c.Counter())
	}

	// wrap-around
	c.Next()
	if got, _ := c.Current(); got != "A" {
		t.Errorf("After second Next(), Current() = %q, want A (wrapped)", got)
	}

	c.Prev()
	if got, _ := c.Current(); got != "B" {
		t.Errorf("After Prev(), Current() = %q, want B (wrapped back)", got)
	}
}

func TestTextCursorCyclic(t *testing.T) {
	entries := []string{"a", "b", "c", "d", "e"}
	c := NewTextCursor(entries)
	c.Next()
	c.Next()
	start := c.Index()

	for i := 0; i < len(entries); i++ {
		c.Next()
	}
	if c.Index() != start {
		t.Errorf("Next() x len returned index %d, want %d", c.Index(), start)
	}

	for i := 0; i < len(entries); i++ {
		c.Prev()
	}
	if c.Index() != start {
		t.Errorf("Prev() x len returned index %d, want %d", c.Index(), start)
	}
}

func TestTextCursorEmpty(t *testing.T) {
	c := NewTextCursor(nil)

	if !c.Empty() {
		t.Fatal("Expected empty cursor")
	}

	// navigation must be a no-op, never a divide-by-zero
	c.Next()
	c.Prev()

	if _, ok := c.Current(); ok {
		t.Error("Current() on empty cursor reported ok")
	}
	if c.Counter() != "0 / 0" {
		t.Errorf("Counter() = %q, want 0 / 0", c.Counter())
	}
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
}

func TestChartKindCycle(t *testing.T) {
	s := NewChartSeries([]string{"Red", "Blue"}, []int{2, 1})

	if s.Kind() != ChartBar {
		t.Fatalf("Initial kind = %q, want bar", s.Kind())
	}

	order := []ChartKind{ChartPie, ChartDoughnut, ChartLine, ChartBar}
	for _, want := range order {
		if got := s.NextKind(); got != want {
			t.Errorf("NextKind() = %q, want %q", got, want)
		}
	}

	if got := s.PrevKind(); got != ChartLine {
		t.Errorf("PrevKind() from bar = %q, want line (wrapped)", got)
	}
}

func TestChartSeriesTogglingKeepsData(t *testing.T) {
	labels := []string{"Yes", "No"}
	counts := []int{3, 4}
	s := NewChartSeries(labels, counts)

	s.NextKind()
	s.NextKind()

	if &s.Labels()[0] != &labels[0] || &s.Counts()[0] != &counts[0] {
		t.Error("Kind toggling must not copy or rebuild the series data")
	}
	if s.Total() != 7 {
		t.Errorf("Total() = %d, want 7", s.Total())
	}
}
