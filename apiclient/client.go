// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var ErrRequestFailed = errors.New("request failed")

// TokenSource supplies the bearer token, when one exists. Satisfied by
// *session.Session.
type TokenSource interface {
	CurrentToken() (string, bool)
}

// Client wraps HTTP access to the survey backend. The Get/GetList/Send
// methods degrade every failure (non-2xx, transport error, unparsable
// body) to nil or empty rather than returning an error; callers treat
// absence as "no data". Do is the validated variant for operations
// where failure must be attributed, such as response submission.
//
// Exactly one attempt per call. Nothing is retried.
type Client struct {
	base   string
	httpc  *http.Client
	tokens TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		httpc:  http.DefaultClient,
		tokens: tokens,
	}
}

// NewWithHTTPClient allows substituting the transport, mainly for tests.
func NewWithHTTPClient(baseURL string, tokens TokenSource, httpc *http.Client) *Client {
	c := New(baseURL, tokens)
	c.httpc = httpc
	return c
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.base
}

// Do performs one request and returns the decoded-checked body. A
// non-2xx status, transport failure, or non-JSON body yields an error
// wrapping ErrRequestFailed. Path segments must already be
// percent-encoded (url.PathEscape) by the caller.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode body: %v", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.CurrentToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", ErrRequestFailed, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, path, resp.StatusCode)
	}

	// DELETE and some POSTs legitimately return empty bodies.
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s %s: malformed JSON body", ErrRequestFailed, method, path)
	}
	return json.RawMessage(raw), nil
}

// Get fetches a path and returns the raw JSON body, or nil when the
// request failed in any way.
func (c *Client) Get(ctx context.Context, path string) json.RawMessage {
	raw, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		slog.Warn("request degraded to nil", "method", "GET", "path", path, "error", err)
		return nil
	}
	return raw
}

// GetList fetches a path expected to hold a JSON array. Anything else
// (error, object, malformed body) comes back as an empty slice.
func (c *Client) GetList(ctx context.Context, path string) []json.RawMessage {
	raw := c.Get(ctx, path)
	if raw == nil {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		slog.Warn("expected array, treating as empty", "path", path)
		return nil
	}
	return list
}

// Send issues a mutating request and returns the raw JSON body, or nil
// when the request failed in any way.
func (c *Client) Send(ctx context.Context, method, path string, body any) json.RawMessage {
	raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		slog.Warn("request degraded to nil", "method", method, "path", path, "error", err)
		return nil
	}
	return raw
}
