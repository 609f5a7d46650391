package events

// Type identifies a kind of engine event
type Type int

const (
	// EventDamage signals player damage from a hazard
	// Trigger: obstacle collision in an active layer
	// Consumer: UI health bar, sound cues | Payload: *DamagePayload
	EventDamage Type = iota

	// EventScoreAdded signals points awarded to the player
	// Trigger: collectible pickup, sequence bonus, CRUD bonus
	// Consumer: UI score display | Payload: *ScorePayload
	EventScoreAdded

	// EventLayerEntered signals a new quest layer starting
	// Trigger: session start, layer transition
	// Consumer: UI scene setup | Payload: *LayerEnteredPayload
	EventLayerEntered

	// EventLayerCompleted signals the layer completion predicate was met
	// Trigger: all required tokens collected, level end reached, or CRUD complete
	// Consumer: UI transition overlay | Payload: *LayerCompletedPayload
	EventLayerCompleted

	// EventPlayerDied signals the attempt ended with health at zero
	// Trigger: damage driving health to 0 | Payload: *PlayerDiedPayload
	EventPlayerDied

	// EventCollectibleCollected signals a themed token pickup
	// Trigger: collectible collision | Payload: *CollectedPayload
	EventCollectibleCollected

	// EventSequenceComplete signals the full required token order was satisfied
	// Trigger: final required token collected in order | Payload: *SequenceCompletePayload
	EventSequenceComplete

	// EventSequenceViolated signals an out-of-order pickup on a handshake theme
	// Trigger: wrong-order collection | Payload: *SequenceViolatedPayload
	EventSequenceViolated

	// EventGateUnlocked signals a gate became passable
	// Trigger: gate collision with its required token already collected
	// Payload: *GatePayload
	EventGateUnlocked

	// EventGateLocked signals a gate refused passage
	// Trigger: gate collision before its required token was collected
	// Payload: *GatePayload
	EventGateLocked

	// EventCRUDComplete signals all four HTTP methods recorded a success
	// Trigger: final missing method succeeding in an API layer
	// Payload: *CRUDCompletePayload
	EventCRUDComplete

	// EventPopupShow signals an educational overlay should appear
	// Trigger: layer entry, in-order token pickup | Payload: *PopupPayload
	EventPopupShow

	// EventPopupHide signals the educational overlay should close
	// Trigger: popup timer expiry, player dismissal | Payload: nil
	EventPopupHide

	// EventPause signals the session entering the paused state
	// Payload: nil
	EventPause

	// EventResume signals the session leaving the paused state
	// Payload: nil
	EventResume

	typeCount // must remain last
)

var typeNames = [...]string{
	EventDamage:               "damage",
	EventScoreAdded:           "score-added",
	EventLayerEntered:         "layer-entered",
	EventLayerCompleted:       "layer-completed",
	EventPlayerDied:           "player-died",
	EventCollectibleCollected: "collectible-collected",
	EventSequenceComplete:     "sequence-complete",
	EventSequenceViolated:     "sequence-violated",
	EventGateUnlocked:         "gate-unlocked",
	EventGateLocked:           "gate-locked",
	EventCRUDComplete:         "crud-complete",
	EventPopupShow:            "popup-show",
	EventPopupHide:            "popup-hide",
	EventPause:                "pause",
	EventResume:               "resume",
}

// String returns the wire name of the event type
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Types returns every declared event type, in declaration order.
// Used by consumers that fan out the whole catalog (e.g. the relay).
func Types() []Type {
	all := make([]Type, typeCount)
	for i := range all {
		all[i] = Type(i)
	}
	return all
}

// Event is a single published event with its payload
type Event struct {
	Type    Type
	Payload any
}
