package mevshare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
)

// Client wraps a reusable *http.Client for the MEV-Share SSE feed and the
// one-shot event-history endpoints. A Client is safe to share across
// goroutines; each Subscribe call returns an independent EventStream.
type Client struct {
	http       *http.Client
	maxRetries *int
}

// New wraps an existing HTTP client. Passing nil uses http.DefaultClient.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient}
}

// WithMaxRetries sets the retry cap and returns the client for chaining.
func (c *Client) WithMaxRetries(n int) *Client {
	c.SetMaxRetries(n)
	return c
}

// SetMaxRetries sets the retry cap.
func (c *Client) SetMaxRetries(n int) { c.maxRetries = &n }

// MaxRetries returns the configured retry cap, or nil if unset.
func (c *Client) MaxRetries() *int { return c.maxRetries }

func (c *Client) dial(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// Subscribe opens a connection to endpoint and returns a typed, lazy event
// stream. Subscribe is a package-level function (not a Client method)
// because Go forbids methods carrying their own type parameters.
func Subscribe[T any](ctx context.Context, c *Client, endpoint string) (*EventStream[T], error) {
	return SubscribeWithQuery[T](ctx, c, endpoint, nil)
}

// SubscribeWithQuery is Subscribe with a serialized query string appended
// to endpoint.
func SubscribeWithQuery[T any](ctx context.Context, c *Client, endpoint string, query url.Values) (*EventStream[T], error) {
	full := endpoint
	if len(query) > 0 {
		full = endpoint + "?" + query.Encode()
	}
	resp, err := c.dial(ctx, full)
	if err != nil {
		return nil, err
	}
	s := &EventStream[T]{
		client:   c,
		endpoint: full,
		id:       uuid.New(),
		state:    stateActive,
	}
	s.attach(resp)
	log.Debug("mevshare: subscribed", "id", s.id, "endpoint", full)
	return s, nil
}

// Events is a convenience wrapper around Subscribe for the MEV-Share Event
// type.
func (c *Client) Events(ctx context.Context, endpoint string) (*EventStream[Event], error) {
	return Subscribe[Event](ctx, c, endpoint)
}

// EventHistory performs a one-shot GET returning historical hints.
func (c *Client) EventHistory(ctx context.Context, endpoint string, params EventHistoryParams) ([]EventHistoryEntry, error) {
	q := url.Values{}
	addInt := func(k string, v *int64) {
		if v != nil {
			q.Set(k, fmt.Sprintf("%d", *v))
		}
	}
	addInt("blockStart", params.BlockStart)
	addInt("blockEnd", params.BlockEnd)
	addInt("timestampStart", params.TimestampStart)
	addInt("timestampEnd", params.TimestampEnd)
	addInt("limit", params.Limit)
	addInt("offset", params.Offset)

	full := endpoint
	if len(q) > 0 {
		full = endpoint + "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var out []EventHistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &SerdeJSONError{Err: err}
	}
	return out, nil
}

// EventHistoryInfo performs a one-shot GET returning the matchmaker's
// history retention window.
func (c *Client) EventHistoryInfo(ctx context.Context, endpoint string) (EventHistoryInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return EventHistoryInfo{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return EventHistoryInfo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return EventHistoryInfo{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var out EventHistoryInfo
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return EventHistoryInfo{}, &SerdeJSONError{Err: err}
	}
	return out, nil
}

func logReconnect(id uuid.UUID, endpoint string, attempt int) {
	log.Debug("mevshare: reconnecting", "id", id, "endpoint", endpoint, "attempt", attempt)
}
