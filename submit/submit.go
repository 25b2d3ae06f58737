// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/models"
)

// Validation failures; all are reported before any network call.
var (
	ErrEmptySubmission    = errors.New("answer at least one question")
	ErrIncompleteDraft    = errors.New("draft entry missing question id or answer text")
	ErrNoResponderID      = errors.New("responder id not reserved")
	ErrCounterUnavailable = errors.New("responder counter unavailable")
)

// State of one submission attempt.
type State int

const (
	StateIdle State = iota
	StateCollecting
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// PartialError reports a submission that failed partway: Submitted
// entries are already persisted on the backend and are not rolled
// back. FailedIndex is the position of the draft whose POST failed.
type PartialError struct {
	Submitted   int
	FailedIndex int
	Cause       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("submission failed at entry %d after %d persisted: %v",
		e.FailedIndex+1, e.Submitted, e.Cause)
}

func (e *PartialError) Unwrap() error { return e.Cause }

// Draft is one answer pending submission.
type Draft struct {
	QuestionID int64
	AnswerText string
	AnswerID   *int64
}

// FormInput is the raw value of one question's form control. For choice
// questions Text is the selected candidate's text and AnswerID its id.
type FormInput struct {
	Text     string
	AnswerID *int64
}

// Flow drives one submission attempt through
// Idle → Collecting → Validating → Submitting → Succeeded | Failed.
type Flow struct {
	api       *apiclient.Client
	surveyID  int64
	state     State
	drafts    []Draft
	responder int64
	attemptID string
}

func NewFlow(api *apiclient.Client, surveyID int64) *Flow {
	return &Flow{
		api:       api,
		surveyID:  surveyID,
		attemptID: uuid.NewString(),
	}
}

func (f *Flow) State() State    { return f.state }
func (f *Flow) Drafts() []Draft { return f.drafts }

// ResponderID returns the reserved responder id, zero before
// ReserveNextID has run.
func (f *Flow) ResponderID() int64 { return f.responder }

// Collect builds the draft list from form values, in question order.
// Questions with a blank value are omitted entirely, never submitted
// as empty.
func (f *Flow) Collect(questions []models.Question, values map[int64]FormInput) {
	f.state = StateCollecting
	f.drafts = f.drafts[:0]
	for _, q := range questions {
		in, ok := values[q.ID]
		if !ok {
			continue
		}
		if strings.TrimSpace(in.Text) == "" && in.AnswerID == nil {
			continue
		}
		f.drafts = append(f.drafts, Draft{
			QuestionID: q.ID,
			AnswerText: in.Text,
			AnswerID:   in.AnswerID,
		})
	}
}

// Validate checks the draft list locally. On failure the flow moves to
// Failed and no network call is ever made for this attempt.
func (f *Flow) Validate() error {
	f.state = StateValidating
	if len(f.drafts) == 0 {
		f.state = StateFailed
		return ErrEmptySubmission
	}
	for _, d := range f.drafts {
		if d.QuestionID == 0 || strings.TrimSpace(d.AnswerText) == "" {
			f.state = StateFailed
			return ErrIncompleteDraft
		}
	}
	return nil
}

// ReserveNextID reads the server-side responder counter and adds one.
// This is read-then-increment with no server reservation: two clients
// reading at nearly the same time can mint the same id. Keeping the
// two-step shape means a future atomic-increment endpoint slots in
// without touching the state machine.
func (f *Flow) ReserveNextID(ctx context.Context) (int64, error) {
	raw := f.api.Get(ctx, "/response/r_id")
	current, ok := decodeCounter(raw)
	if !ok {
		return 0, ErrCounterUnavailable
	}
	f.responder = current + 1
	return f.responder, nil
}

// SubmitWithID posts the drafts sequentially under the given responder
// id. The first failed POST aborts the rest; entries already posted
// stay persisted, and the returned *PartialError says which entry
// failed. Order of POSTs is draft (question) order, deliberately not
// parallel, so failures attribute cleanly.
func (f *Flow) SubmitWithID(ctx context.Context, responderID int64) error {
	if responderID == 0 {
		f.state = StateFailed
		return ErrNoResponderID
	}
	f.responder = responderID
	f.state = StateSubmitting

	path := fmt.Sprintf("/response/%d", f.surveyID)
	for i, d := range f.drafts {
		body := models.SubmitResponseRequest{
			ID:          0,
			QuestionID:  d.QuestionID,
			Answer:      d.AnswerText,
			ResponderID: responderID,
			AnswerID:    d.AnswerID,
		}
		if _, err := f.api.Do(ctx, "POST", path, body); err != nil {
			f.state = StateFailed
			slog.Error("submission aborted",
				"attempt", f.attemptID,
				"survey_id", f.surveyID,
				"failed_entry", i+1,
				"persisted", i,
				"error", err,
			)
			return &PartialError{Submitted: i, FailedIndex: i, Cause: err}
		}
	}

	slog.Info("submission complete",
		"attempt", f.attemptID,
		"survey_id", f.surveyID,
		"responder_id", responderID,
		"entries", len(f.drafts),
	)
	f.state = StateSucceeded
	f.drafts = nil
	return nil
}

// Run executes the whole flow: validate, reserve a responder id, then
// submit. Collect must have been called first.
func (f *Flow) Run(ctx context.Context) error {
	if err := f.Validate(); err != nil {
		return err
	}
	id, err := f.ReserveNextID(ctx)
	if err != nil {
		f.state = StateFailed
		return err
	}
	return f.SubmitWithID(ctx, id)
}

// decodeCounter accepts the three shapes the counter endpoint has been
// seen to produce: a bare number, an object with a conventional field
// (r_id, id, count, value), or any object with exactly one numeric
// field. The true contract is unconfirmed with the backend owner.
func decodeCounter(raw json.RawMessage) (int64, bool) {
	if raw == nil {
		return 0, false
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var obj map[string]json.Number
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, false
	}
	for _, key := range []string{"r_id", "id", "count", "value"} {
		if v, ok := obj[key]; ok {
			if n, err := v.Int64(); err == nil {
				return n, true
			}
		}
	}
	if len(obj) == 1 {
		for _, v := range obj {
			if n, err := v.Int64(); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
