// Package engine drives a quest attempt: the per-layer lifecycle state
// machine, the player run state carried across layers, and the tick-driven
// session that wires the level generator, collection trackers, and event
// bus together.
package engine

import "github.com/codequest/quest-engine/events"

// Phase is the lifecycle state of the current layer
type Phase uint8

const (
	// PhaseEntering builds the layer: level generation and tracker setup
	PhaseEntering Phase = iota
	// PhaseActive processes collision-driven inputs
	PhaseActive
	// PhaseCompleting publishes completion and decides the next layer
	PhaseCompleting
	// PhaseDying ends the attempt; no further layer transitions
	PhaseDying
	// PhaseTransitioning hands off to the next layer's Entering
	PhaseTransitioning
	// PhaseTerminal is quest victory: the final layer completed
	PhaseTerminal
)

var phaseNames = [...]string{
	PhaseEntering:      "entering",
	PhaseActive:        "active",
	PhaseCompleting:    "completing",
	PhaseDying:         "dying",
	PhaseTransitioning: "transitioning",
	PhaseTerminal:      "terminal",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// MaxHealth is the health ceiling and the starting value of an attempt
const MaxHealth = 100

// DefaultObstacleDamage applies when a hit carries no explicit amount
const DefaultObstacleDamage = 10

// RunState is the player's run state for one quest attempt. It is a
// value: transitions go through pure functions that return the new state,
// so every transition is testable without a session or renderer.
type RunState struct {
	Phase      Phase
	Health     int // Clamped to [0, MaxHealth]
	TotalScore int // Cumulative across the attempt
	LayerScore int // Accumulated within the current layer, reset on entry
	LayerIndex int
}

// NewRunState returns the state a fresh attempt starts from
func NewRunState() RunState {
	return RunState{Phase: PhaseEntering, Health: MaxHealth}
}

// ApplyDamage returns the state after taking damage, with health clamped
// at zero, plus the events to publish. Reaching zero transitions to
// Dying and emits exactly one player-died event.
func ApplyDamage(s RunState, amount int, source string) (RunState, []events.Event) {
	if amount <= 0 {
		amount = DefaultObstacleDamage
	}
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
	emitted := []events.Event{{
		Type:    events.EventDamage,
		Payload: &events.DamagePayload{Amount: amount, Health: s.Health, Source: source},
	}}
	if s.Health == 0 && s.Phase != PhaseDying {
		s.Phase = PhaseDying
		emitted = append(emitted, events.Event{
			Type:    events.EventPlayerDied,
			Payload: &events.PlayerDiedPayload{Index: s.LayerIndex, TotalScore: s.TotalScore},
		})
	}
	return s, emitted
}

// AddScore returns the state with points applied to both the layer and
// total counters, plus the score event to publish. Negative points are
// ignored; score never decreases.
func AddScore(s RunState, points int, source string) (RunState, []events.Event) {
	if points <= 0 {
		return s, nil
	}
	s.LayerScore += points
	s.TotalScore += points
	return s, []events.Event{{
		Type: events.EventScoreAdded,
		Payload: &events.ScorePayload{
			Points:     points,
			LayerScore: s.LayerScore,
			TotalScore: s.TotalScore,
			Source:     source,
		},
	}}
}

// EnterLayer returns the state positioned at the start of layer index.
// Health persists across layers within an attempt; score accumulated in
// the previous layer stays in the total.
func EnterLayer(s RunState, index int) RunState {
	s.Phase = PhaseEntering
	s.LayerIndex = index
	s.LayerScore = 0
	return s
}

// CompleteLayer returns the state after the layer's completion predicate
// was met, plus the completion event. When a next layer exists the state
// moves to Transitioning; otherwise the quest is won and the state is
// Terminal.
func CompleteLayer(s RunState, layerCount int) (RunState, []events.Event) {
	s.Phase = PhaseCompleting
	last := s.LayerIndex+1 >= layerCount
	ev := events.Event{
		Type: events.EventLayerCompleted,
		Payload: &events.LayerCompletedPayload{
			Index:      s.LayerIndex,
			LayerScore: s.LayerScore,
			TotalScore: s.TotalScore,
			QuestDone:  last,
		},
	}
	if last {
		s.Phase = PhaseTerminal
	} else {
		s.Phase = PhaseTransitioning
	}
	return s, []events.Event{ev}
}
