package bus

import (
	"testing"

	"ashfall/ui/internal/console"
)

func newTestBus() *Bus {
	return New(console.New(console.Config{}))
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := newTestBus()

	var order []int
	b.Subscribe("tick", func(any) { order = append(order, 1) })
	b.Subscribe("tick", func(any) { order = append(order, 2) })
	b.Subscribe("tick", func(any) { order = append(order, 3) })

	b.Publish("tick", nil)

	if len(order) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Fatalf("delivery %d out of order: got %d", i, got)
		}
	}
}

func TestPublishPassesPayload(t *testing.T) {
	b := newTestBus()

	var got any
	b.Subscribe("tick", func(payload any) { got = payload })

	b.Publish("tick", 42)

	if got != 42 {
		t.Fatalf("expected payload 42, got %v", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := newTestBus()

	calls := 0
	unsub := b.Subscribe("tick", func(any) { calls++ })

	b.Publish("tick", nil)
	unsub()
	b.Publish("tick", nil)

	if calls != 1 {
		t.Fatalf("expected 1 call after unsubscribe, got %d", calls)
	}

	// A second unsubscribe must be harmless.
	unsub()
	if b.SubscriberCount("tick") != 0 {
		t.Fatalf("expected 0 subscribers, got %d", b.SubscriberCount("tick"))
	}
}

func TestUnsubscribeRemovesOnlyItsRegistration(t *testing.T) {
	b := newTestBus()

	first := 0
	second := 0
	unsub := b.Subscribe("tick", func(any) { first++ })
	b.Subscribe("tick", func(any) { second++ })

	unsub()
	b.Publish("tick", nil)

	if first != 0 {
		t.Fatalf("unsubscribed handler ran %d times", first)
	}
	if second != 1 {
		t.Fatalf("expected surviving handler to run once, got %d", second)
	}
}

func TestPanickingHandlerDoesNotBlockOthers(t *testing.T) {
	sink := console.NewMemorySink()
	b := New(console.New(console.Config{Sinks: []console.Sink{sink}}))

	ran := false
	b.Subscribe("tick", func(any) { panic("boom") })
	b.Subscribe("tick", func(any) { ran = true })

	b.Publish("tick", nil)

	if !ran {
		t.Fatal("handler after panic never ran")
	}

	lines := sink.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 console line, got %d", len(lines))
	}
	if lines[0].Severity != console.SeverityError {
		t.Fatalf("expected error severity, got %v", lines[0].Severity)
	}
}

func TestPublishWithoutSubscribersIsNoOp(t *testing.T) {
	b := newTestBus()
	b.Publish("nothing-listens", "payload")
}

func TestSubscribeNilHandler(t *testing.T) {
	b := newTestBus()
	unsub := b.Subscribe("tick", nil)
	unsub()
	if b.SubscriberCount("tick") != 0 {
		t.Fatalf("nil handler registered: %d subscribers", b.SubscriberCount("tick"))
	}
}

func TestUnsubscribeAll(t *testing.T) {
	b := newTestBus()

	calls := 0
	b.Subscribe("tick", func(any) { calls++ })
	b.Subscribe("tick", func(any) { calls++ })
	b.Subscribe("other", func(any) { calls++ })

	b.UnsubscribeAll("tick")
	b.Publish("tick", nil)
	b.Publish("other", nil)

	if calls != 1 {
		t.Fatalf("expected only the other handler to run, got %d calls", calls)
	}
}

func TestReset(t *testing.T) {
	b := newTestBus()

	calls := 0
	b.Subscribe("tick", func(any) { calls++ })
	b.Reset()
	b.Publish("tick", nil)

	if calls != 0 {
		t.Fatalf("expected no deliveries after reset, got %d", calls)
	}
}

func TestSubscribeDuringPublishTakesEffectNextPublish(t *testing.T) {
	b := newTestBus()

	lateCalls := 0
	b.Subscribe("tick", func(any) {
		b.Subscribe("tick", func(any) { lateCalls++ })
	})

	b.Publish("tick", nil)
	if lateCalls != 0 {
		t.Fatalf("late handler ran during the publish that registered it")
	}

	b.Publish("tick", nil)
	if lateCalls != 1 {
		t.Fatalf("expected late handler to run once, got %d", lateCalls)
	}
}
