// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard_test

import (
	"context"
	"testing"

	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/dashboard"
	"github.com/danielhkuo/survey-scope/models"
	"github.com/danielhkuo/survey-scope/testutil"
)

func TestLoadEnrichesCounts(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddSurvey(
		models.Survey{ID: 1, ShortCode: "aa11", Name: "First", CreatorID: 9},
		[]models.Question{
			{ID: 1, SurveyID: 1, Text: "Q1", Type: models.TypeText},
			{ID: 2, SurveyID: 1, Text: "Q2", Type: models.TypeText},
		},
		nil,
		[]models.Response{
			{ID: 1, QuestionID: 1, ResponderID: 1, Text: "a"},
			{ID: 2, QuestionID: 2, ResponderID: 1, Text: "b"},
			{ID: 3, QuestionID: 1, ResponderID: 2, Text: "c"},
		},
	)
	backend.AddSurvey(
		models.Survey{ID: 2, ShortCode: "bb22", Name: "Second", CreatorID: 9},
		[]models.Question{{ID: 3, SurveyID: 2, Text: "Q3", Type: models.TypeText}},
		nil,
		nil,
	)

	svc := dashboard.New(apiclient.New(backend.URL(), nil), 4)
	items, err := svc.Load(context.Background(), 9)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Questions != 2 || items[0].Responses != 3 {
		t.Errorf("First item counts = %d/%d, want 2/3", items[0].Questions, items[0].Responses)
	}
	if items[1].Questions != 1 || items[1].Responses != 0 {
		t.Errorf("Second item counts = %d/%d, want 1/0", items[1].Questions, items[1].Responses)
	}

	totals := dashboard.Sum(items)
	want := dashboard.Totals{Surveys: 2, Questions: 3, Responses: 3}
	if totals != want {
		t.Errorf("Sum() = %+v, want %+v", totals, want)
	}
}

func TestLoadNoSurveys(t *testing.T) {
	backend := testutil.NewBackend(t)
	svc := dashboard.New(apiclient.New(backend.URL(), nil), 4)

	items, err := svc.Load(context.Background(), 77)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got %v", items)
	}
}

func TestLoadCountFailuresShowZeros(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddSurvey(
		models.Survey{ID: 1, ShortCode: "aa11", Name: "First", CreatorID: 9},
		[]models.Question{{ID: 1, SurveyID: 1, Text: "Q1", Type: models.TypeText}},
		nil, nil,
	)
	backend.Statuses["/survey/1/question"] = 500

	svc := dashboard.New(apiclient.New(backend.URL(), nil), 0)
	items, err := svc.Load(context.Background(), 9)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Questions != 0 {
		t.Errorf("Failed count lookup should show zero, got %d", items[0].Questions)
	}
}

func TestLoadCancelled(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddSurvey(
		models.Survey{ID: 1, ShortCode: "aa11", Name: "First", CreatorID: 9},
		nil, nil, nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := dashboard.New(apiclient.New(backend.URL(), nil), 2)
	if _, err := svc.Load(ctx, 9); err == nil {
		t.Fatal("Load() with cancelled context should fail")
	}
}
