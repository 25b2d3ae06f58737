// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"strings"

	"github.com/danielhkuo/survey-scope/models"
)

// MatchStrategy selects how a response is matched to a candidate label.
type MatchStrategy int

const (
	// MatchByText counts a response toward the label whose text equals
	// the response's answer text. This mirrors the shipped dashboard
	// behavior exactly, including when answer ids are present on the
	// response records. Changing the default alters historical counts,
	// so MatchByID exists but must be chosen deliberately.
	MatchByText MatchStrategy = iota

	// MatchByID counts a response toward the candidate whose id equals
	// the response's answer_id. Responses without an answer_id count
	// nowhere. Only meaningful when candidate answers exist; the
	// observed-text fallback always matches by text.
	MatchByID
)

// Kind discriminates the two view shapes.
type Kind string

const (
	KindText   Kind = "text"
	KindChoice Kind = "choice"
)

// QuestionView is the render-ready projection of one question plus its
// responses. Text views carry Entries; Choice views carry parallel
// Labels and Counts.
type QuestionView struct {
	Question models.Question `json:"question"`
	Kind     Kind            `json:"kind"`
	Entries  []string        `json:"entries,omitempty"`
	Labels   []string        `json:"labels,omitempty"`
	Counts   []int           `json:"counts,omitempty"`
}

// Aggregate builds the view for one question from the survey's full
// candidate and response sets. Both slices may contain entries for
// other questions; they are filtered here.
//
// Text questions (and any unrecognized type) keep the raw answer texts
// in backend order. Choice questions tabulate counts per label, where
// labels come from the candidate set in candidate order, or — when no
// candidates exist — from the distinct answer texts actually observed,
// in first-occurrence order with empty values discarded.
func Aggregate(q models.Question, candidates []models.CandidateAnswer, responses []models.Response, strategy MatchStrategy) QuestionView {
	view := QuestionView{Question: q}

	qResponses := make([]models.Response, 0, len(responses))
	for _, r := range responses {
		if r.QuestionID == q.ID {
			qResponses = append(qResponses, r)
		}
	}

	if !q.IsChoice() {
		view.Kind = KindText
		view.Entries = make([]string, 0, len(qResponses))
		for _, r := range qResponses {
			view.Entries = append(view.Entries, r.Text)
		}
		return view
	}

	view.Kind = KindChoice

	qCandidates := make([]models.CandidateAnswer, 0, len(candidates))
	for _, c := range candidates {
		if c.QuestionID == q.ID {
			qCandidates = append(qCandidates, c)
		}
	}

	if len(qCandidates) > 0 {
		view.Labels = make([]string, 0, len(qCandidates))
		for _, c := range qCandidates {
			view.Labels = append(view.Labels, c.Text)
		}
		view.Counts = make([]int, len(view.Labels))
		for i := range qCandidates {
			view.Counts[i] = countMatches(qCandidates[i], qResponses, strategy)
		}
		return view
	}

	// No candidate set: fall back to the texts actually observed.
	// Matching is by text regardless of strategy; there are no ids to
	// match against.
	seen := make(map[string]int)
	for _, r := range qResponses {
		if isBlank(r.Text) {
			continue
		}
		if _, ok := seen[r.Text]; !ok {
			seen[r.Text] = len(view.Labels)
			view.Labels = append(view.Labels, r.Text)
			view.Counts = append(view.Counts, 0)
		}
		view.Counts[seen[r.Text]]++
	}
	return view
}

// AggregateAll builds views for every question in order. Responses
// whose question id matches no known question are silently ignored.
func AggregateAll(questions []models.Question, candidates []models.CandidateAnswer, responses []models.Response, strategy MatchStrategy) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, Aggregate(q, candidates, responses, strategy))
	}
	return views
}

func countMatches(c models.CandidateAnswer, responses []models.Response, strategy MatchStrategy) int {
	n := 0
	for _, r := range responses {
		// An empty answer text contributes to no label's count, even
		// under id matching.
		if isBlank(r.Text) {
			continue
		}
		switch strategy {
		case MatchByID:
			if r.AnswerID != nil && *r.AnswerID == c.ID {
				n++
			}
		default:
			if r.Text == c.Text {
				n++
			}
		}
	}
	return n
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
