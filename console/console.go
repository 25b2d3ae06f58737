// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/survey-scope/aggregate"
	"github.com/danielhkuo/survey-scope/dashboard"
	"github.com/danielhkuo/survey-scope/models"
	"github.com/danielhkuo/survey-scope/snapshot"
	"github.com/danielhkuo/survey-scope/view"
)

const barWidth = 40

// RenderChart draws the series in its current kind. Bar gets scaled
// rune bars; pie and doughnut get a percentage table; line gets a
// compact value row.
func RenderChart(w io.Writer, title string, s *view.ChartSeries) {
	fmt.Fprintf(w, "%s [%s]\n", title, s.Kind())
	if s.Empty() {
		fmt.Fprintln(w, view.NoResponsesYet)
		return
	}

	switch s.Kind() {
	case view.ChartPie, view.ChartDoughnut:
		renderPercentages(w, s)
	case view.ChartLine:
		renderValueRow(w, s)
	default:
		renderBars(w, s)
	}
}

func renderBars(w io.Writer, s *view.ChartSeries) {
	labels, counts := s.Labels(), s.Counts()
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	width := labelWidth(labels)
	for i, label := range labels {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", counts[i]*barWidth/max)
		}
		fmt.Fprintf(w, "  %-*s %s %d\n", width, label, bar, counts[i])
	}
}

func renderPercentages(w io.Writer, s *view.ChartSeries) {
	labels, counts := s.Labels(), s.Counts()
	total := s.Total()
	width := labelWidth(labels)
	for i, label := range labels {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(counts[i]) / float64(total)
		}
		fmt.Fprintf(w, "  %-*s %5.1f%% (%d)\n", width, label, pct, counts[i])
	}
}

func renderValueRow(w io.Writer, s *view.ChartSeries) {
	labels, counts := s.Labels(), s.Counts()
	parts := make([]string, len(labels))
	for i := range labels {
		parts[i] = fmt.Sprintf("%s:%d", labels[i], counts[i])
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " — "))
}

// RenderTextEntry draws the current page of a text cursor, or the
// empty-state message.
func RenderTextEntry(w io.Writer, c *view.TextCursor) {
	if c.Empty() {
		fmt.Fprintln(w, view.EmptyTextMessage)
		return
	}
	entry, _ := c.Current()
	if strings.TrimSpace(entry) == "" {
		entry = "[empty]"
	}
	fmt.Fprintf(w, "  ◀ %s ▶\n  %s\n", c.Counter(), entry)
}

// RenderQuestionList prints the selectable question index.
func RenderQuestionList(w io.Writer, questions []models.Question) {
	for i, q := range questions {
		fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, q.Text, q.Type)
	}
}

// RenderSurveyHeader prints the survey name and description.
func RenderSurveyHeader(w io.Writer, s models.Survey) {
	fmt.Fprintf(w, "%s  [%s]\n", s.Name, s.ShortCode)
	if s.Description != "" {
		fmt.Fprintln(w, s.Description)
	}
}

// RenderQuestions prints the respond-page view: every question with
// its candidate answers.
func RenderQuestions(w io.Writer, questions []models.Question, candidates map[int64][]models.CandidateAnswer) {
	if len(questions) == 0 {
		fmt.Fprintln(w, "No questions found for this survey.")
		return
	}
	for i, q := range questions {
		fmt.Fprintf(w, "Question %d: %s (%s)\n", i+1, q.Text, q.Type)
		if !q.IsChoice() {
			fmt.Fprintln(w, "  (free text)")
			continue
		}
		choices := candidates[q.ID]
		if len(choices) == 0 {
			fmt.Fprintf(w, "  %s\n", view.NoChoicesMessage)
			continue
		}
		for _, c := range choices {
			fmt.Fprintf(w, "  [%d] %s\n", c.ID, c.Text)
		}
	}
}

// RenderDashboard prints the enriched survey table and totals.
func RenderDashboard(w io.Writer, items []dashboard.Item, totals dashboard.Totals) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No surveys yet.")
		return
	}
	fmt.Fprintf(w, "%-10s %-30s %10s %10s\n", "CODE", "SURVEY", "QUESTIONS", "RESPONSES")
	for _, item := range items {
		name := item.Survey.Name
		if name == "" {
			name = "Untitled survey"
		}
		fmt.Fprintf(w, "%-10s %-30s %10s %10s\n",
			item.Survey.ShortCode,
			name,
			humanize.Comma(int64(item.Questions)),
			humanize.Comma(int64(item.Responses)),
		)
	}
	fmt.Fprintf(w, "Totals: %s surveys, %s questions, %s responses\n",
		humanize.Comma(int64(totals.Surveys)),
		humanize.Comma(int64(totals.Questions)),
		humanize.Comma(int64(totals.Responses)),
	)
}

// RenderSnapshotHistory prints a survey's saved snapshots, newest
// first.
func RenderSnapshotHistory(w io.Writer, records []snapshot.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No snapshots recorded.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %s (%d question views)\n",
			rec.ID, humanize.Time(rec.TakenAt), len(rec.Views))
	}
}

// RenderUsers prints the admin user table.
func RenderUsers(w io.Writer, users []models.UserSummary) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	fmt.Fprintf(w, "%-6s %-20s %-30s %s\n", "ID", "NAME", "EMAIL", "ROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%-6d %-20s %-30s %s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

// RenderSurveys prints the admin survey table.
func RenderSurveys(w io.Writer, surveys []models.Survey) {
	if len(surveys) == 0 {
		fmt.Fprintln(w, "No surveys found.")
		return
	}
	fmt.Fprintf(w, "%-6s %-10s %-30s %s\n", "ID", "CODE", "NAME", "CREATOR")
	for _, s := range surveys {
		fmt.Fprintf(w, "%-6d %-10s %-30s %d\n", s.ID, s.ShortCode, s.Name, s.CreatorID)
	}
}

func labelWidth(labels []string) int {
	width := 0
	for _, label := range labels {
		if len(label) > width {
			width = len(label)
		}
	}
	return width
}

// FromView builds the right presentation state for a question view.
func FromView(v aggregate.QuestionView) (*view.TextCursor, *view.ChartSeries) {
	if v.Kind == aggregate.KindChoice {
		return nil, view.NewChartSeries(v.Labels, v.Counts)
	}
	return view.NewTextCursor(v.Entries), nil
}
