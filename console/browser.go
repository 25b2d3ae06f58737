// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danielhkuo/survey-scope/aggregate"
	"github.com/danielhkuo/survey-scope/view"
)

// Browser is the interactive data page: pick a question, page through
// its text responses or cycle its chart kinds. All state lives on
// already-aggregated views; navigation never re-fetches.
type Browser struct {
	views   []aggregate.QuestionView
	current int
	cursors map[int]*view.TextCursor
	charts  map[int]*view.ChartSeries
}

func NewBrowser(views []aggregate.QuestionView) *Browser {
	return &Browser{
		views:   views,
		cursors: make(map[int]*view.TextCursor),
		charts:  make(map[int]*view.ChartSeries),
	}
}

// Run reads commands line by line until "q" or EOF:
//
//	<number>  select question
//	n / p     next / previous text response
//	t / T     next / previous chart kind
//	q         quit
func (b *Browser) Run(in io.Reader, out io.Writer) {
	if len(b.views) == 0 {
		fmt.Fprintln(out, "No questions found for this survey.")
		return
	}

	b.render(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		switch {
		case cmd == "q":
			return
		case cmd == "n":
			b.cursor().Next()
		case cmd == "p":
			b.cursor().Prev()
		case cmd == "t":
			if chart := b.chart(); chart != nil {
				chart.NextKind()
			}
		case cmd == "T":
			if chart := b.chart(); chart != nil {
				chart.PrevKind()
			}
		case cmd == "":
			continue
		default:
			if i, err := strconv.Atoi(cmd); err == nil && i >= 1 && i <= len(b.views) {
				b.current = i - 1
			} else {
				fmt.Fprintf(out, "unknown command %q\n", cmd)
				continue
			}
		}
		b.render(out)
	}
}

func (b *Browser) render(out io.Writer) {
	v := b.views[b.current]
	fmt.Fprintf(out, "\n[%d/%d] %s\n", b.current+1, len(b.views), v.Question.Text)
	if v.Kind == aggregate.KindChoice {
		RenderChart(out, v.Question.Text, b.chart())
		fmt.Fprintln(out, "(t/T chart kind, number to switch question, q to quit)")
		return
	}
	RenderTextEntry(out, b.cursor())
	fmt.Fprintln(out, "(n/p to navigate, number to switch question, q to quit)")
}

// cursor returns the text cursor for the current question, making one
// on first use so positions survive switching questions. Choice
// questions get an empty cursor whose navigation is a no-op.
func (b *Browser) cursor() *view.TextCursor {
	c, ok := b.cursors[b.current]
	if !ok {
		c = view.NewTextCursor(b.views[b.current].Entries)
		b.cursors[b.current] = c
	}
	return c
}

func (b *Browser) chart() *view.ChartSeries {
	v := b.views[b.current]
	if v.Kind != aggregate.KindChoice {
		return nil
	}
	s, ok := b.charts[b.current]
	if !ok {
		s = view.NewChartSeries(v.Labels, v.Counts)
		b.charts[b.current] = s
	}
	return s
}
