// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strings"
)

// Question type constants as stored by the backend.
// Comparison is always case-insensitive; see Question.IsChoice.
const (
	TypeText     = "Text"
	TypeMultiple = "Multiple"
	TypeBoolean  = "Boolean"
)

// Domain types

type Survey struct {
	ID          int64  `json:"id"`
	ShortCode   string `json:"s_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatorID   int64  `json:"creator_id"`
}

// UnmarshalJSON tolerates the backend's misspelled "discription" field,
// which older survey records still carry.
func (s *Survey) UnmarshalJSON(data []byte) error {
	type wire struct {
		ID          int64  `json:"id"`
		ShortCode   string `json:"s_code"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Discription string `json:"discription"`
		CreatorID   int64  `json:"creator_id"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID = w.ID
	s.ShortCode = w.ShortCode
	s.Name = w.Name
	s.Description = w.Description
	if s.Description == "" {
		s.Description = w.Discription
	}
	s.CreatorID = w.CreatorID
	return nil
}

type Question struct {
	ID       int64  `json:"id"`
	SurveyID int64  `json:"survey_id"`
	Text     string `json:"question"`
	Type     string `json:"type"`
}

// IsChoice reports whether the question draws answers from a fixed
// candidate set. Anything unrecognized falls back to free text.
func (q Question) IsChoice() bool {
	switch strings.ToLower(q.Type) {
	case "multiple", "boolean", "bool":
		return true
	}
	return false
}

type CandidateAnswer struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"answer"`
}

type Response struct {
	ID          int64  `json:"id"`
	QuestionID  int64  `json:"question_id"`
	ResponderID int64  `json:"responder_id"`
	Text        string `json:"answer"`
	AnswerID    *int64 `json:"answer_id,omitempty"`
}

// UnmarshalJSON accepts "response" as an alternate key for the answer
// text; both appear in stored response records.
func (r *Response) UnmarshalJSON(data []byte) error {
	type wire struct {
		ID          int64  `json:"id"`
		QuestionID  int64  `json:"question_id"`
		ResponderID int64  `json:"responder_id"`
		Answer      string `json:"answer"`
		Response    string `json:"response"`
		AnswerID    *int64 `json:"answer_id"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = w.ID
	r.QuestionID = w.QuestionID
	r.ResponderID = w.ResponderID
	r.Text = w.Answer
	if r.Text == "" {
		r.Text = w.Response
	}
	r.AnswerID = w.AnswerID
	return nil
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitResponseRequest is the body of POST /response/{surveyId}. The
// backend insists on a zero id placeholder in new records.
type SubmitResponseRequest struct {
	ID          int64  `json:"id"`
	QuestionID  int64  `json:"question_id"`
	Answer      string `json:"answer"`
	ResponderID int64  `json:"responder_id"`
	AnswerID    *int64 `json:"answer_id,omitempty"`
}

// Response types

type LoginResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
