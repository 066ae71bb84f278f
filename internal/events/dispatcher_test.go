package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishDeliversOnlyMatchingType(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var submitted, decided int
	dispatcher.Subscribe(EventLeaveRequestSubmitted, func(context.Context, Event) error {
		submitted++
		return nil
	})
	dispatcher.Subscribe(EventLeaveRequestDecided, func(context.Context, Event) error {
		decided++
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventLeaveRequestSubmitted}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if submitted != 1 || decided != 0 {
		t.Errorf("submitted=%d decided=%d, want 1/0", submitted, decided)
	}
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var reached bool
	dispatcher.Subscribe(EventLeaveRequestDecided, func(context.Context, Event) error {
		return errors.New("smtp unavailable")
	})
	dispatcher.Subscribe(EventLeaveRequestDecided, func(context.Context, Event) error {
		reached = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventLeaveRequestDecided}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !reached {
		t.Error("later handlers must still run after one fails")
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	if err := dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}
