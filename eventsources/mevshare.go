package eventsources

import (
	"context"
	"errors"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/engine"
	"github.com/vyorkin/kazuka/mevshare"
)

// rawMevShareSource adapts an *mevshare.EventStream into
// engine.EventSource[mevshare.Event], translating the stream's terminal
// state into engine.ErrSourceEnded.
type rawMevShareSource struct {
	stream *mevshare.EventStream[mevshare.Event]
}

func (s *rawMevShareSource) Next(ctx context.Context) (mevshare.Event, error) {
	ev, err := s.stream.Next(ctx)
	if err != nil {
		if errors.Is(err, mevshare.ErrStreamEnded) {
			return mevshare.Event{}, engine.ErrSourceEnded
		}
		return mevshare.Event{}, err
	}
	return ev, nil
}

// NewMevShareSource wraps a subscribed MEV-Share SSE stream as an
// EventSource[kazuka.Event], fusing the narrowly-typed mevshare.Event
// stream into the engine's Event union via engine.EventSourceMap.
func NewMevShareSource(stream *mevshare.EventStream[mevshare.Event]) engine.EventSource[kazuka.Event] {
	raw := &rawMevShareSource{stream: stream}
	return engine.EventSourceMap[mevshare.Event, kazuka.Event](raw, func(ev mevshare.Event) kazuka.Event {
		return &kazuka.MevShareEvent{Event: ev}
	})
}
