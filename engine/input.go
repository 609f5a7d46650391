package engine

import "github.com/codequest/quest-engine/collection"

// Input is a collision- or challenge-driven occurrence fed into the
// session by the host while a layer is active. The closed set of variants
// replaces method dispatch on a scene hierarchy.
type Input interface {
	isInput()
}

// ObstacleHit reports the player striking a hazard
type ObstacleHit struct {
	Index  int    // Position in the generated obstacle list
	Kind   string // Hazard kind, forwarded to UI feedback
	Damage int    // 0 = DefaultObstacleDamage
}

// CollectibleHit reports the player touching a themed token
type CollectibleHit struct {
	ID string
}

// GateHit reports the player reaching a gate
type GateHit struct {
	GateID     string
	RequiresID string
}

// ReachedEnd reports the player reaching the level's end x-coordinate
type ReachedEnd struct{}

// ChallengeSolved reports a non-platformer challenge (quiz form) being
// answered correctly
type ChallengeSolved struct {
	Points int
}

// RequestRecorded reports the outcome of one request in an API layer
type RequestRecorded struct {
	Method  collection.Method
	Success bool
	Points  int // Awarded per successful request
}

func (ObstacleHit) isInput()     {}
func (CollectibleHit) isInput()  {}
func (GateHit) isInput()         {}
func (ReachedEnd) isInput()      {}
func (ChallengeSolved) isInput() {}
func (RequestRecorded) isInput() {}
