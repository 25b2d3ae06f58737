// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/danielhkuo/survey-scope/models"
)

// Backend is an in-process fake of the survey REST API, just enough
// surface for the client packages. Fixture fields are plain maps and
// slices; mutate them before issuing requests. RawBodies and Statuses
// force misbehavior per path for degradation tests.
type Backend struct {
	Server *httptest.Server

	mu sync.Mutex

	Surveys       []models.Survey
	Questions     map[int64][]models.Question
	Answers       map[int64][]models.CandidateAnswer
	Responses     map[int64][]models.Response
	Users         []models.UserSummary
	SurveysByUser map[int64][]int64

	// CounterBody is served verbatim from GET /response/r_id.
	CounterBody string

	// FailPostAfter fails the Nth POST /response/{id} (1-based) with a
	// 500 and every POST after it. Zero disables.
	FailPostAfter int
	postCount     int

	// Posts records every accepted response submission, in order.
	Posts []models.SubmitResponseRequest

	// Deletes records every DELETE path received, in order.
	Deletes []string

	// RawBodies overrides the response body for an exact path.
	// Statuses overrides the status for an exact path.
	RawBodies map[string]string
	Statuses  map[string]int

	// LastAuthorization captures the most recent Authorization header.
	LastAuthorization string

	// LoginToken, when set, makes POST /auth/login succeed with this
	// token and the first fixture user.
	LoginToken string
}

// NewBackend starts the fake server; it is closed via t.Cleanup.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		Questions:     make(map[int64][]models.Question),
		Answers:       make(map[int64][]models.CandidateAnswer),
		Responses:     make(map[int64][]models.Response),
		SurveysByUser: make(map[int64][]int64),
		CounterBody:   "0",
		RawBodies:     make(map[string]string),
		Statuses:      make(map[string]int),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /survey/{rest...}", b.getSurveyRoutes)
	mux.HandleFunc("GET /response/r_id", b.getCounter)
	mux.HandleFunc("GET /response/survey/{id}", b.getResponses)
	mux.HandleFunc("POST /response/{id}", b.postResponse)
	mux.HandleFunc("GET /user/{id}/survey", b.getUserSurveys)
	mux.HandleFunc("GET /admin/users", b.getUsers)
	mux.HandleFunc("POST /auth/login", b.postLogin)
	mux.HandleFunc("POST /auth/register", b.postRegister)
	mux.HandleFunc("DELETE /", b.handleDelete)

	b.Server = httptest.NewServer(b.intercept(mux))
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the fake backend's base URL.
func (b *Backend) URL() string {
	return b.Server.URL
}

// AddSurvey installs a survey with its questions, candidate answers,
// and responses, and links it to its creator.
func (b *Backend) AddSurvey(s models.Survey, questions []models.Question, answers []models.CandidateAnswer, responses []models.Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Surveys = append(b.Surveys, s)
	b.Questions[s.ID] = questions
	b.Answers[s.ID] = answers
	b.Responses[s.ID] = responses
	if s.CreatorID != 0 {
		b.SurveysByUser[s.CreatorID] = append(b.SurveysByUser[s.CreatorID], s.ID)
	}
}

// PostCount reports how many response POSTs arrived, accepted or not.
func (b *Backend) PostCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.postCount
}

func (b *Backend) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.LastAuthorization = r.Header.Get("Authorization")
		status, hasStatus := b.Statuses[r.URL.Path]
		body, hasBody := b.RawBodies[r.URL.Path]
		b.mu.Unlock()

		if hasStatus || hasBody {
			if !hasStatus {
				status = http.StatusOK
			}
			w.WriteHeader(status)
			w.Write([]byte(body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) getSurveyRoutes(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rest := r.PathValue("rest")
	switch {
	case rest == "":
		writeJSON(w, b.Surveys)

	case len(rest) > 5 && rest[:5] == "code/":
		code := rest[5:]
		matches := []models.Survey{}
		for _, s := range b.Surveys {
			if s.ShortCode == code {
				matches = append(matches, s)
			}
		}
		writeJSON(w, matches)

	default:
		// {id}, {id}/question, or {id}/answer
		var sub string
		for i := 0; i < len(rest); i++ {
			if rest[i] == '/' {
				sub = rest[i+1:]
				rest = rest[:i]
				break
			}
		}
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		switch sub {
		case "":
			for _, s := range b.Surveys {
				if s.ID == id {
					writeJSON(w, s)
					return
				}
			}
			http.NotFound(w, r)
		case "question":
			writeJSON(w, orEmptyQuestions(b.Questions[id]))
		case "answer":
			writeJSON(w, orEmptyAnswers(b.Answers[id]))
		default:
			http.NotFound(w, r)
		}
	}
}

func (b *Backend) getCounter(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(b.CounterBody))
}

func (b *Backend) getResponses(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, orEmptyResponses(b.Responses[id]))
}

func (b *Backend) postResponse(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.postCount++
	if b.FailPostAfter > 0 && b.postCount >= b.FailPostAfter {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	var req models.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	b.Posts = append(b.Posts, req)

	surveyID, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	created := models.Response{
		ID:          int64(len(b.Posts)),
		QuestionID:  req.QuestionID,
		ResponderID: req.ResponderID,
		Text:        req.Answer,
		AnswerID:    req.AnswerID,
	}
	b.Responses[surveyID] = append(b.Responses[surveyID], created)
	writeJSON(w, created)
}

func (b *Backend) getUserSurveys(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	surveys := []models.Survey{}
	for _, sid := range b.SurveysByUser[userID] {
		for _, s := range b.Surveys {
			if s.ID == sid {
				surveys = append(surveys, s)
			}
		}
	}
	writeJSON(w, surveys)
}

func (b *Backend) getUsers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.Users)
}

func (b *Backend) postLogin(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LoginToken == "" {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}
	resp := models.LoginResponse{Token: b.LoginToken}
	if len(b.Users) > 0 {
		resp.User = &b.Users[0]
	}
	writeJSON(w, resp)
}

func (b *Backend) postRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	u := models.UserSummary{ID: int64(len(b.Users) + 1), Name: req.Name, Email: req.Email}
	b.Users = append(b.Users, u)
	writeJSON(w, u)
}

func (b *Backend) handleDelete(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Deletes = append(b.Deletes, r.URL.Path)
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func orEmptyQuestions(qs []models.Question) []models.Question {
	if qs == nil {
		return []models.Question{}
	}
	return qs
}

func orEmptyAnswers(as []models.CandidateAnswer) []models.CandidateAnswer {
	if as == nil {
		return []models.CandidateAnswer{}
	}
	return as
}

func orEmptyResponses(rs []models.Response) []models.Response {
	if rs == nil {
		return []models.Response{}
	}
	return rs
}
