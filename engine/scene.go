package engine

import (
	"github.com/codequest/quest-engine/collection"
	"github.com/codequest/quest-engine/events"
	"github.com/codequest/quest-engine/level"
	"github.com/codequest/quest-engine/quest"
)

// Scene is one layer's play surface: a tagged variant per layer type
// driven by the session's input dispatch, instead of a subclass per type.
// Created on layer entry, discarded on layer exit.
type Scene struct {
	LayerType quest.LayerType
	Kind      string // Challenge kind; empty = no-op scene

	// Platformer challenges
	Level   *level.Level
	Tracker *collection.Tracker

	// API (CRUD) challenges
	CRUD *collection.CRUDTracker

	// Obstacles struck and awaiting their respawn timer
	hidden map[int]bool
}

// newScene builds the scene for a layer. A layer without a challenge
// (an authoring defect that quest validation should have caught) yields
// a no-op scene whose completion predicate is unreachable.
func newScene(bus *events.Bus, layer quest.Layer) *Scene {
	sc := &Scene{
		LayerType: layer.Type,
		hidden:    make(map[int]bool),
	}
	if layer.Challenge == nil {
		return sc
	}
	sc.Kind = layer.Challenge.Kind

	switch sc.Kind {
	case quest.ChallengePlatformer:
		lv := level.Generate(level.ParseConfig(layer.Challenge.Config))
		sc.Level = &lv
		sc.Tracker = collection.NewTracker(bus, lv.Theme, 0)
	case quest.ChallengeCRUD:
		sc.CRUD = collection.NewCRUDTracker(bus, 0)
	}
	return sc
}

// ObstacleActive reports whether the obstacle at index is currently
// present (not struck and awaiting respawn).
func (s *Scene) ObstacleActive(index int) bool {
	return !s.hidden[index]
}
