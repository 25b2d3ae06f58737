// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/models"
)

// Item is one survey row on the dashboard, enriched with counts.
type Item struct {
	Survey    models.Survey
	Questions int
	Responses int
}

// Totals are the dashboard's headline numbers.
type Totals struct {
	Surveys   int
	Questions int
	Responses int
}

type Service struct {
	api   *apiclient.Client
	limit int
}

func New(api *apiclient.Client, fanoutLimit int) *Service {
	return &Service{api: api, limit: fanoutLimit}
}

// Load fetches the user's surveys and enriches each with its question
// and response counts. Enrichment fans out one pair of requests per
// survey, bounded by the configured limit (0 = unbounded). A survey
// whose count lookups fail shows zeros rather than an error. Returns
// a non-nil error only when ctx is cancelled; callers discard the
// partial result in that case.
func (s *Service) Load(ctx context.Context, userID int64) ([]Item, error) {
	list := s.api.GetList(ctx, fmt.Sprintf("/user/%d/survey", userID))
	if len(list) == 0 {
		return nil, ctx.Err()
	}

	items := make([]Item, 0, len(list))
	for _, raw := range list {
		var survey models.Survey
		if err := json.Unmarshal(raw, &survey); err != nil {
			continue
		}
		items = append(items, Item{Survey: survey})
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}
	for i := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id := items[i].Survey.ID
			items[i].Questions = len(s.api.GetList(gctx, fmt.Sprintf("/survey/%d/question", id)))
			items[i].Responses = len(s.api.GetList(gctx, fmt.Sprintf("/response/survey/%d", id)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// Sum totals the enriched rows.
func Sum(items []Item) Totals {
	t := Totals{Surveys: len(items)}
	for _, item := range items {
		t.Questions += item.Questions
		t.Responses += item.Responses
	}
	return t
}
