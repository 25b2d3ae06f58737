// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/models"
)

var ErrNotFound = errors.New("survey not found")

type Loader struct {
	api *apiclient.Client
}

func NewLoader(api *apiclient.Client) *Loader {
	return &Loader{api: api}
}

// ResolveSurvey looks a survey up by numeric id or short code. An
// all-digit identifier hits GET /survey/{id}; anything else hits
// GET /survey/code/{code}. The backend answers with either an object
// or a one-element array; both are accepted. A missing record (nil
// body, empty array, zero id) is ErrNotFound with the identifier
// echoed back.
func (l *Loader) ResolveSurvey(ctx context.Context, identifier string) (models.Survey, error) {
	if identifier == "" {
		return models.Survey{}, fmt.Errorf("%w: empty identifier", ErrNotFound)
	}

	var path string
	if isNumeric(identifier) {
		path = "/survey/" + identifier
	} else {
		path = "/survey/code/" + url.PathEscape(identifier)
	}

	raw := l.api.Get(ctx, path)
	if raw == nil {
		return models.Survey{}, fmt.Errorf("%w: %s", ErrNotFound, identifier)
	}

	survey, ok := decodeSurvey(raw)
	if !ok || survey.ID == 0 {
		return models.Survey{}, fmt.Errorf("%w: %s", ErrNotFound, identifier)
	}
	return survey, nil
}

// LoadQuestions returns the survey's questions in backend order. The
// list order is the display order; no re-sorting happens anywhere.
func (l *Loader) LoadQuestions(ctx context.Context, surveyID int64) []models.Question {
	raw := l.api.Get(ctx, fmt.Sprintf("/survey/%d/question", surveyID))
	var questions []models.Question
	if raw == nil || json.Unmarshal(raw, &questions) != nil {
		return nil
	}
	return questions
}

// LoadCandidateAnswers returns all candidate answers for the survey,
// across every question. Group them with GroupCandidates. An empty
// result is a renderable state, not an error.
func (l *Loader) LoadCandidateAnswers(ctx context.Context, surveyID int64) []models.CandidateAnswer {
	raw := l.api.Get(ctx, fmt.Sprintf("/survey/%d/answer", surveyID))
	var answers []models.CandidateAnswer
	if raw == nil || json.Unmarshal(raw, &answers) != nil {
		return nil
	}
	return answers
}

// LoadResponses returns every submitted response for the survey, in
// backend (insertion) order.
func (l *Loader) LoadResponses(ctx context.Context, surveyID int64) []models.Response {
	raw := l.api.Get(ctx, fmt.Sprintf("/response/survey/%d", surveyID))
	var responses []models.Response
	if raw == nil || json.Unmarshal(raw, &responses) != nil {
		return nil
	}
	return responses
}

// GroupCandidates indexes candidate answers by question id, preserving
// per-question order.
func GroupCandidates(answers []models.CandidateAnswer) map[int64][]models.CandidateAnswer {
	grouped := make(map[int64][]models.CandidateAnswer)
	for _, a := range answers {
		grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
	}
	return grouped
}

// Bundle is everything the data and respond pages need for one survey.
type Bundle struct {
	Survey     models.Survey
	Questions  []models.Question
	Candidates map[int64][]models.CandidateAnswer
	Responses  []models.Response
}

// LoadBundle resolves the survey, then fetches questions, candidate
// answers, and responses concurrently. Any of the three may come back
// empty; only an unresolvable survey is an error.
func (l *Loader) LoadBundle(ctx context.Context, identifier string) (Bundle, error) {
	survey, err := l.ResolveSurvey(ctx, identifier)
	if err != nil {
		return Bundle{}, err
	}

	b := Bundle{Survey: survey}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.Questions = l.LoadQuestions(gctx, survey.ID)
		return nil
	})
	var answers []models.CandidateAnswer
	g.Go(func() error {
		answers = l.LoadCandidateAnswers(gctx, survey.ID)
		return nil
	})
	g.Go(func() error {
		b.Responses = l.LoadResponses(gctx, survey.ID)
		return nil
	})
	_ = g.Wait()

	b.Candidates = GroupCandidates(answers)
	return b, ctx.Err()
}

func decodeSurvey(raw json.RawMessage) (models.Survey, bool) {
	// Array shape first: /survey/code/{code} often wraps its match.
	var list []models.Survey
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return models.Survey{}, false
		}
		return list[0], true
	}

	var survey models.Survey
	if err := json.Unmarshal(raw, &survey); err != nil {
		return models.Survey{}, false
	}
	return survey, true
}

func isNumeric(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
