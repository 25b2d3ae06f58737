// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/danielhkuo/survey-scope/models"
)

var ErrLoginFailed = errors.New("login failed")

// Poster is the slice of the API client that the auth flows need.
// Declared here to keep session free of an import cycle with apiclient.
type Poster interface {
	Do(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// Session holds the bearer token and user identity for one run of the
// client. It is injected wherever identity is needed; nothing reads
// ambient globals. Durable storage is the caller's problem.
type Session struct {
	mu    sync.Mutex
	token string
	user  *models.UserSummary
}

func New() *Session {
	return &Session{}
}

// NewWithToken seeds a session from an externally stored token, e.g.
// the API_TOKEN setting.
func NewWithToken(token string) *Session {
	return &Session{token: token}
}

// CurrentToken returns the bearer token, if one is set.
func (s *Session) CurrentToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// CurrentUser returns the signed-in user, if known.
func (s *Session) CurrentUser() (models.UserSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.UserSummary{}, false
	}
	return *s.user, true
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) SetUser(u models.UserSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Clear drops the token and user, returning the session to signed-out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Login exchanges credentials for a token via POST /auth/login and
// stores the token and user on success.
func (s *Session) Login(ctx context.Context, api Poster, email, password string) error {
	raw, err := api.Do(ctx, "POST", "/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return errors.Join(ErrLoginFailed, err)
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return errors.Join(ErrLoginFailed, err)
	}
	if resp.Token == "" {
		return ErrLoginFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = resp.Token
	if resp.User != nil {
		s.user = resp.User
	}
	return nil
}

// Register creates an account via POST /auth/register. The backend does
// not sign the new user in; call Login afterwards.
func (s *Session) Register(ctx context.Context, api Poster, name, email, password string) error {
	_, err := api.Do(ctx, "POST", "/auth/register", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	return err
}
