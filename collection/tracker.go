// Package collection tracks per-layer token gathering: which themed
// tokens have been collected, in what order, and whether the layer's
// required sequence has been satisfied. Progress is reported exclusively
// through the event bus; incorrect play is a normal event, never an error.
package collection

import (
	"github.com/codequest/quest-engine/events"
	"github.com/codequest/quest-engine/level"
)

// DefaultSequenceBonus is awarded when the required order is completed
const DefaultSequenceBonus = 500

// Tracker holds one layer instance's collection state. Created on layer
// entry, destroyed on layer exit.
type Tracker struct {
	bus   *events.Bus
	theme level.Theme
	bonus int

	collected []string // Every pickup, in collection order
	nextIndex int      // Position in the required order reached in-order
	violated  bool
	complete  bool
}

// NewTracker creates a tracker for one layer's theme
func NewTracker(bus *events.Bus, theme level.Theme, bonus int) *Tracker {
	if bonus <= 0 {
		bonus = DefaultSequenceBonus
	}
	return &Tracker{bus: bus, theme: theme, bonus: bonus}
}

// Collect records a token pickup. Collection is never blocked: an
// out-of-order id still counts toward the collected set, but reports
// inOrder=false and, on gated (handshake-style) themes, a violation
// event. The final required id collected in order fires sequence-complete
// and awards the bonus.
func (t *Tracker) Collect(id string) {
	inOrder := t.nextIndex < t.theme.Total() && t.theme.IDs[t.nextIndex] == id
	expected := ""
	if t.nextIndex < t.theme.Total() {
		expected = t.theme.IDs[t.nextIndex]
	}

	t.collected = append(t.collected, id)
	if inOrder {
		t.nextIndex++
	} else {
		t.violated = true
	}

	t.bus.Publish(events.EventCollectibleCollected, &events.CollectedPayload{
		ID:      id,
		Label:   t.theme.Label(id),
		InOrder: inOrder,
		Count:   len(t.collected),
		Total:   t.theme.Total(),
	})

	if !inOrder && t.theme.Gated {
		t.bus.Publish(events.EventSequenceViolated, &events.SequenceViolatedPayload{
			Theme:    t.theme.Name,
			Expected: expected,
			Got:      id,
		})
	}

	if inOrder && t.nextIndex == t.theme.Total() && !t.complete {
		t.complete = true
		t.bus.Publish(events.EventSequenceComplete, &events.SequenceCompletePayload{
			Theme:      t.theme.Name,
			AllInOrder: !t.violated,
			Bonus:      t.bonus,
		})
	}
}

// Unlocked reports whether the token a gate requires has been collected.
// Unlocking is order-independent even though scoring rewards strict
// order: the gate opens as soon as its token is anywhere in the list.
func (t *Tracker) Unlocked(id string) bool {
	for _, c := range t.collected {
		if c == id {
			return true
		}
	}
	return false
}

// Complete reports whether the required order has been fully satisfied
func (t *Tracker) Complete() bool {
	return t.complete
}

// Violated reports whether any out-of-order pickup occurred
func (t *Tracker) Violated() bool {
	return t.violated
}

// Bonus returns the configured sequence-completion bonus
func (t *Tracker) Bonus() int {
	return t.bonus
}

// Collected returns a copy of the pickup history in collection order
func (t *Tracker) Collected() []string {
	out := make([]string, len(t.collected))
	copy(out, t.collected)
	return out
}
