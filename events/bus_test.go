package events

import "testing"

// TestPublishOrder tests handlers fire in registration order
func TestPublishOrder(t *testing.T) {
	bus := NewBus()
	var got []int

	bus.Subscribe(EventDamage, func(Event) { got = append(got, 1) })
	bus.Subscribe(EventDamage, func(Event) { got = append(got, 2) })
	bus.Subscribe(EventDamage, func(Event) { got = append(got, 3) })

	bus.Publish(EventDamage, nil)

	if len(got) != 3 {
		t.Fatalf("Expected 3 deliveries, got %d", len(got))
	}
	for i, v := range got {
		if v != i+1 {
			t.Errorf("Delivery %d out of order: got %d", i, v)
		}
	}
}

// TestPublishPayload tests the payload reaches subscribers intact
func TestPublishPayload(t *testing.T) {
	bus := NewBus()
	var got *DamagePayload
	bus.Subscribe(EventDamage, func(ev Event) {
		got = ev.Payload.(*DamagePayload)
	})

	bus.Publish(EventDamage, &DamagePayload{Amount: 10, Health: 90, Source: "spike"})

	if got == nil || got.Amount != 10 || got.Health != 90 {
		t.Errorf("Payload mismatch: got %+v", got)
	}
}

// TestCancel tests the returned cancel function removes the handler
func TestCancel(t *testing.T) {
	bus := NewBus()
	count := 0
	cancel := bus.Subscribe(EventScoreAdded, func(Event) { count++ })

	bus.Publish(EventScoreAdded, nil)
	cancel()
	bus.Publish(EventScoreAdded, nil)

	if count != 1 {
		t.Errorf("Expected 1 delivery after cancel, got %d", count)
	}

	// Double-cancel is a no-op.
	cancel()
	if bus.HandlerCount(EventScoreAdded) != 0 {
		t.Errorf("Expected no handlers left")
	}
}

// TestSubscribeOnce tests auto-unsubscribe after first delivery
func TestSubscribeOnce(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.SubscribeOnce(EventPlayerDied, func(Event) { count++ })

	bus.Publish(EventPlayerDied, nil)
	bus.Publish(EventPlayerDied, nil)

	if count != 1 {
		t.Errorf("Expected once-handler to fire exactly once, got %d", count)
	}
	if bus.HandlerCount(EventPlayerDied) != 0 {
		t.Errorf("Expected once-handler to be removed after delivery")
	}
}

// TestSubscribeOnceReentrant tests a once-handler never double-fires even
// when the event is re-published from within its own dispatch
func TestSubscribeOnceReentrant(t *testing.T) {
	bus := NewBus()
	count := 0
	depth := 0

	bus.Subscribe(EventPause, func(Event) {
		depth++
		if depth == 1 {
			bus.Publish(EventPause, nil)
		}
	})
	bus.SubscribeOnce(EventPause, func(Event) { count++ })

	bus.Publish(EventPause, nil)

	if count != 1 {
		t.Errorf("Expected once-handler to fire once under re-entrancy, got %d", count)
	}
}

// TestPanicIsolation tests a throwing handler does not block later handlers
func TestPanicIsolation(t *testing.T) {
	bus := NewBus()
	reached := false

	bus.Subscribe(EventDamage, func(Event) { panic("handler failure") })
	bus.Subscribe(EventDamage, func(Event) { reached = true })

	bus.Publish(EventDamage, nil)

	if !reached {
		t.Errorf("Expected delivery to continue past a panicking handler")
	}
}

// TestReentrantPublish tests nested publish completes on the same call stack
func TestReentrantPublish(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(EventDamage, func(Event) {
		order = append(order, "damage-begin")
		bus.Publish(EventPlayerDied, nil)
		order = append(order, "damage-end")
	})
	bus.Subscribe(EventPlayerDied, func(Event) {
		order = append(order, "died")
	})

	bus.Publish(EventDamage, nil)

	want := []string{"damage-begin", "died", "damage-end"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d entries, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

// TestSubscribeDuringDispatch tests a handler added mid-dispatch does not
// receive the in-flight event
func TestSubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()
	lateFired := 0

	bus.Subscribe(EventScoreAdded, func(Event) {
		bus.Subscribe(EventScoreAdded, func(Event) { lateFired++ })
	})

	bus.Publish(EventScoreAdded, nil)
	if lateFired != 0 {
		t.Errorf("Handler added during dispatch must not see the in-flight event")
	}

	bus.Publish(EventScoreAdded, nil)
	if lateFired != 1 {
		t.Errorf("Expected late handler to fire on the next publish, got %d", lateFired)
	}
}

// TestClear tests teardown removes all handlers
func TestClear(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.Subscribe(EventDamage, func(Event) { count++ })
	bus.Subscribe(EventScoreAdded, func(Event) { count++ })
	bus.SubscribeOnce(EventPause, func(Event) { count++ })

	bus.Clear()
	bus.Publish(EventDamage, nil)
	bus.Publish(EventScoreAdded, nil)
	bus.Publish(EventPause, nil)

	if count != 0 {
		t.Errorf("Expected no deliveries after Clear, got %d", count)
	}
}

// TestTypeNames tests every event type has a wire name
func TestTypeNames(t *testing.T) {
	for _, tp := range Types() {
		if tp.String() == "unknown" || tp.String() == "" {
			t.Errorf("Event type %d has no name", tp)
		}
	}
	if Type(-1).String() != "unknown" {
		t.Errorf("Out-of-range type must stringify as unknown")
	}
}
