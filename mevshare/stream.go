package mevshare

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type streamState int

const (
	stateActive streamState = iota
	stateRetry
	stateEnd
)

// EventStream is a single-producer, lazily-pulled, possibly-infinite
// stream of decoded frames of type T. It is not internally synchronized:
// callers that need to share it across goroutines must add their own
// locking, exactly as a lazy iterator would in the reference
// implementation. Cancellation is by dropping the stream (closing the
// underlying HTTP response body), which Close does explicitly.
type EventStream[T any] struct {
	client   *Client
	endpoint string
	id       uuid.UUID

	resp    *http.Response
	reader  *bufio.Reader
	state   streamState
	retries int

	pendingDelay time.Duration
}

// ID returns the stream's correlation id, generated once at subscribe
// time and stable across reconnects; used only to tie log lines for a
// single subscription together.
func (s *EventStream[T]) ID() uuid.UUID { return s.id }

func (s *EventStream[T]) attach(resp *http.Response) {
	s.resp = resp
	s.reader = bufio.NewReaderSize(resp.Body, 4096)
}

// Next blocks until the next event, error, or the stream's end. Once the
// stream reaches End, every subsequent call returns ErrStreamEnded.
func (s *EventStream[T]) Next(ctx context.Context) (T, error) {
	var zero T
	for {
		switch s.state {
		case stateEnd:
			return zero, ErrStreamEnded

		case stateRetry:
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(s.pendingDelay):
			}
			logReconnect(s.id, s.endpoint, s.retries)
			resp, err := s.client.dial(ctx, s.endpoint)
			if err != nil {
				s.state = stateEnd
				return zero, err
			}
			s.attach(resp)
			s.state = stateActive

		case stateActive:
			fr, err := readFrame(s.reader)
			if err != nil {
				if errors.Is(err, io.EOF) {
					s.state = stateEnd
					s.closeResp()
					continue
				}
				// Transport error mid-stream: yield it, stay Active so
				// the caller may poll again (matches the reference state
				// table: "HTTP error -> yield Err, stay Active").
				return zero, err
			}

			switch fr.kind {
			case frameRetry:
				s.retries++
				if s.client.maxRetries != nil && s.retries > *s.client.maxRetries {
					s.state = stateEnd
					s.closeResp()
					return zero, &MaxRetriesExceededError{Retries: *s.client.maxRetries}
				}
				s.pendingDelay = time.Duration(fr.retryMs) * time.Millisecond
				s.closeResp()
				s.state = stateRetry

			case frameMessage:
				var v T
				if err := json.Unmarshal([]byte(fr.data), &v); err != nil {
					return zero, &SerdeJSONError{Err: err}
				}
				return v, nil
			}
		}
	}
}

func (s *EventStream[T]) closeResp() {
	if s.resp != nil {
		s.resp.Body.Close()
		s.resp = nil
	}
}

// Close drops the stream, closing the underlying HTTP connection if any.
func (s *EventStream[T]) Close() error {
	s.closeResp()
	s.state = stateEnd
	return nil
}

// Retries returns the number of times this stream has entered the Retry
// state so far.
func (s *EventStream[T]) Retries() int { return s.retries }

// ResetRetries zeroes the retry counter. retry()/Retry() itself does NOT
// reset it — this is the explicit escape hatch the reference design calls
// out as the resolution to an otherwise ambiguous point in the source.
func (s *EventStream[T]) ResetRetries() { s.retries = 0 }

// Retry forces an immediate reconnect to the current endpoint, as if the
// server had sent "retry: 0". It increments the retry counter exactly as a
// server-directed retry would; the actual reconnect dial happens on the
// next call to Next.
func (s *EventStream[T]) Retry() {
	s.retryWith(s.endpoint)
}

// RetryWith forces an immediate reconnect to a new endpoint.
func (s *EventStream[T]) RetryWith(endpoint string) {
	s.retryWith(endpoint)
}

func (s *EventStream[T]) retryWith(endpoint string) {
	if s.state == stateEnd {
		return
	}
	s.endpoint = endpoint
	s.closeResp()
	s.pendingDelay = 0
	s.state = stateRetry
	s.retries++
}
