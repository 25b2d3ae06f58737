// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/models"
)

// Console performs the administrative operations: listing users and
// surveys, and deleting them. Requires a session token with admin
// rights on the backend; without one the backend answers 401/403 and
// operations report failure.
type Console struct {
	api *apiclient.Client
}

func NewConsole(api *apiclient.Client) *Console {
	return &Console{api: api}
}

// ListUsers returns every registered user.
func (c *Console) ListUsers(ctx context.Context) []models.UserSummary {
	raw := c.api.Get(ctx, "/admin/users")
	var users []models.UserSummary
	if raw == nil || json.Unmarshal(raw, &users) != nil {
		return nil
	}
	return users
}

// ListSurveys returns every survey, across all creators.
func (c *Console) ListSurveys(ctx context.Context) []models.Survey {
	raw := c.api.Get(ctx, "/survey/")
	var surveys []models.Survey
	if raw == nil || json.Unmarshal(raw, &surveys) != nil {
		return nil
	}
	return surveys
}

// CascadeResult reports what a cascade delete managed to remove. The
// cascade is best-effort: individual answer/response deletions that
// fail are logged and skipped, never reasons to stop.
type CascadeResult struct {
	AnswersDeleted   int
	ResponsesDeleted int
	SurveyDeleted    bool
}

// DeleteSurveyCascade removes a survey and its dependents: candidate
// answers first, then responses, then the survey record itself. The
// backend has no server-side cascade, so the order matters — deleting
// the survey first would orphan the rest.
func (c *Console) DeleteSurveyCascade(ctx context.Context, surveyID int64) (CascadeResult, error) {
	var result CascadeResult

	answers := c.api.GetList(ctx, fmt.Sprintf("/survey/%d/answer", surveyID))
	for _, raw := range answers {
		var a models.CandidateAnswer
		if err := json.Unmarshal(raw, &a); err != nil {
			continue
		}
		path := fmt.Sprintf("/survey/%d/answer/%d", surveyID, a.ID)
		if _, err := c.api.Do(ctx, http.MethodDelete, path, nil); err != nil {
			slog.Warn("failed to delete candidate answer", "survey_id", surveyID, "answer_id", a.ID, "error", err)
			continue
		}
		result.AnswersDeleted++
	}

	responses := c.api.GetList(ctx, fmt.Sprintf("/response/survey/%d", surveyID))
	for _, raw := range responses {
		var r models.Response
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		if _, err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/response/%d", r.ID), nil); err != nil {
			slog.Warn("failed to delete response", "survey_id", surveyID, "response_id", r.ID, "error", err)
			continue
		}
		result.ResponsesDeleted++
	}

	if _, err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/survey/%d", surveyID), nil); err != nil {
		return result, fmt.Errorf("delete survey %d: %w", surveyID, err)
	}
	result.SurveyDeleted = true
	return result, nil
}

// DeleteUser removes a user after deleting each of their surveys (the
// backend does not cascade ownership either).
func (c *Console) DeleteUser(ctx context.Context, userID int64) error {
	surveys := c.api.GetList(ctx, fmt.Sprintf("/user/%d/survey", userID))
	for _, raw := range surveys {
		var s models.Survey
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if _, err := c.DeleteSurveyCascade(ctx, s.ID); err != nil {
			slog.Warn("failed to delete user's survey", "user_id", userID, "survey_id", s.ID, "error", err)
		}
	}

	if _, err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/user/%d", userID), nil); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}
