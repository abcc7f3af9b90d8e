package notify

import "github.com/google/uuid"

// Kind classifies a cart mutation event.
type Kind string

const (
	KindAdded           Kind = "added"
	KindQuantityUpdated Kind = "quantityUpdated"
	KindRemoved         Kind = "removed"
	KindCleared         Kind = "cleared"
)

// Event is one human-readable cart notification. Product carries the display
// title of the affected product; it is empty for cleared events.
type Event struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Product string    `json:"product,omitempty"`
	Message string    `json:"message"`
}

// New builds an event with a fresh id.
func New(kind Kind, product, message string) Event {
	return Event{
		ID:      uuid.New(),
		Kind:    kind,
		Product: product,
		Message: message,
	}
}

// Notifier receives cart events. Implementations must not block the caller;
// the cart manager invokes them synchronously after each mutation.
type Notifier interface {
	Notify(Event)
}

// Func adapts a plain function to a Notifier.
type Func func(Event)

func (f Func) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard Notifier = Func(func(Event) {})
