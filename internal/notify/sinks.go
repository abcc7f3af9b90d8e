package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// LogSink writes every event to the service log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(e Event) {
	s.log.Info().
		Str("event_id", e.ID.String()).
		Str("kind", string(e.Kind)).
		Str("product", e.Product).
		Msg(e.Message)
}

// Fanout delivers each event to every sink in order.
type Fanout []Notifier

func (f Fanout) Notify(e Event) {
	for _, n := range f {
		n.Notify(e)
	}
}

// Ring keeps the most recent events so the presentation layer can poll them,
// newest last. Older events are dropped once capacity is reached.
type Ring struct {
	mu     sync.Mutex
	events []Event
	cap    int
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 50
	}
	return &Ring{cap: capacity}
}

func (r *Ring) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if len(r.events) > r.cap {
		r.events = r.events[len(r.events)-r.cap:]
	}
}

// Recent returns a copy of the buffered events in arrival order.
func (r *Ring) Recent() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
