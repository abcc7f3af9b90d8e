package notify

import "testing"

func TestRingCapacity(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.Notify(New(KindAdded, "P", "msg"))
	}

	events := r.Recent()
	if len(events) != 3 {
		t.Fatalf("expected 3 buffered events, got %d", len(events))
	}
}

func TestFanout(t *testing.T) {
	var a, b int
	f := Fanout{
		Func(func(Event) { a++ }),
		Func(func(Event) { b++ }),
	}

	f.Notify(New(KindCleared, "", "All items removed from your cart"))

	if a != 1 || b != 1 {
		t.Fatalf("fanout delivered a=%d b=%d", a, b)
	}
}

func TestNewEvent(t *testing.T) {
	e := New(KindRemoved, "Backpack", "Backpack removed from your cart")
	if e.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("event id not assigned")
	}
	if e.Kind != KindRemoved || e.Product != "Backpack" {
		t.Fatalf("unexpected event: %+v", e)
	}
}
