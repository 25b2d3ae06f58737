// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/models"
	"github.com/danielhkuo/survey-scope/schema"
	"github.com/danielhkuo/survey-scope/testutil"
)

func seedBackend(t *testing.T) (*testutil.Backend, *schema.Loader) {
	t.Helper()
	backend := testutil.NewBackend(t)
	backend.AddSurvey(
		models.Survey{ID: 5, ShortCode: "ab12", Name: "Lunch Poll", Description: "weekly"},
		[]models.Question{
			{ID: 1, SurveyID: 5, Text: "First?", Type: models.TypeText},
			{ID: 2, SurveyID: 5, Text: "Second?", Type: models.TypeMultiple},
		},
		[]models.CandidateAnswer{
			{ID: 10, QuestionID: 2, Text: "Soup"},
			{ID: 11, QuestionID: 2, Text: "Salad"},
		},
		[]models.Response{
			{ID: 1, QuestionID: 1, ResponderID: 1, Text: "hi"},
		},
	)
	return backend, schema.NewLoader(apiclient.New(backend.URL(), nil))
}

func TestResolveSurvey(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantID     int64
		wantErr    bool
	}{
		{name: "numeric id", identifier: "5", wantID: 5},
		{name: "short code", identifier: "ab12", wantID: 5},
		{name: "unknown id", identifier: "404", wantErr: true},
		{name: "unknown code", identifier: "zz99", wantErr: true},
		{name: "empty identifier", identifier: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, loader := seedBackend(t)

			survey, err := loader.ResolveSurvey(context.Background(), tt.identifier)
			if tt.wantErr {
				if !errors.Is(err, schema.ErrNotFound) {
					t.Fatalf("ResolveSurvey(%q) error = %v, want ErrNotFound", tt.identifier, err)
				}
				if tt.identifier != "" && !strings.Contains(err.Error(), tt.identifier) {
					t.Errorf("Error %q should echo the identifier", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveSurvey(%q) failed: %v", tt.identifier, err)
			}
			if survey.ID != tt.wantID {
				t.Errorf("Survey ID = %d, want %d", survey.ID, tt.wantID)
			}
		})
	}
}

func TestResolveSurveyMalformedBody(t *testing.T) {
	backend, loader := seedBackend(t)
	backend.RawBodies["/survey/5"] = `{not json`

	_, err := loader.ResolveSurvey(context.Background(), "5")
	if !errors.Is(err, schema.ErrNotFound) {
		t.Fatalf("ResolveSurvey() error = %v, want ErrNotFound", err)
	}
}

func TestLoadQuestionsPreservesOrder(t *testing.T) {
	_, loader := seedBackend(t)

	questions := loader.LoadQuestions(context.Background(), 5)
	if len(questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(questions))
	}
	if questions[0].Text != "First?" || questions[1].Text != "Second?" {
		t.Errorf("Question order not preserved: %v", questions)
	}
}

func TestLoadDegradesToEmpty(t *testing.T) {
	backend, loader := seedBackend(t)
	backend.Statuses["/survey/5/question"] = 500
	backend.RawBodies["/survey/5/answer"] = `{"not": "an array"}`

	if got := loader.LoadQuestions(context.Background(), 5); len(got) != 0 {
		t.Errorf("Failed fetch should yield no questions, got %v", got)
	}
	if got := loader.LoadCandidateAnswers(context.Background(), 5); len(got) != 0 {
		t.Errorf("Malformed body should yield no answers, got %v", got)
	}
}

func TestGroupCandidates(t *testing.T) {
	answers := []models.CandidateAnswer{
		{ID: 1, QuestionID: 7, Text: "a"},
		{ID: 2, QuestionID: 8, Text: "b"},
		{ID: 3, QuestionID: 7, Text: "c"},
	}

	grouped := schema.GroupCandidates(answers)
	if len(grouped) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(grouped))
	}
	if got := grouped[7]; len(got) != 2 || got[0].Text != "a" || got[1].Text != "c" {
		t.Errorf("Group for question 7 lost order: %v", got)
	}
}

func TestLoadBundle(t *testing.T) {
	_, loader := seedBackend(t)

	bundle, err := loader.LoadBundle(context.Background(), "ab12")
	if err != nil {
		t.Fatalf("LoadBundle() failed: %v", err)
	}
	if bundle.Survey.ID != 5 {
		t.Errorf("Survey ID = %d, want 5", bundle.Survey.ID)
	}
	if len(bundle.Questions) != 2 {
		t.Errorf("Expected 2 questions, got %d", len(bundle.Questions))
	}
	if len(bundle.Candidates[2]) != 2 {
		t.Errorf("Expected 2 candidates for question 2, got %v", bundle.Candidates)
	}
	if len(bundle.Responses) != 1 {
		t.Errorf("Expected 1 response, got %d", len(bundle.Responses))
	}
}

func TestLoadBundleUnknownSurvey(t *testing.T) {
	_, loader := seedBackend(t)

	_, err := loader.LoadBundle(context.Background(), "nope")
	if !errors.Is(err, schema.ErrNotFound) {
		t.Fatalf("LoadBundle() error = %v, want ErrNotFound", err)
	}
}
