// Package quest defines the quest data model and the loader that fetches,
// validates, and caches quest definitions from the external quest store.
package quest

// LayerType tags one stage of a quest
type LayerType string

const (
	LayerBrowser  LayerType = "BROWSER"
	LayerNetwork  LayerType = "NETWORK"
	LayerAPI      LayerType = "API"
	LayerDatabase LayerType = "DATABASE"
)

// Valid reports whether the tag is one of the fixed enumeration
func (t LayerType) Valid() bool {
	switch t {
	case LayerBrowser, LayerNetwork, LayerAPI, LayerDatabase:
		return true
	}
	return false
}

// Challenge is the teaching task for a layer: a kind tag plus an opaque
// config map whose shape depends on the kind.
type Challenge struct {
	Kind   string         `json:"type" yaml:"type"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// Challenge kinds understood by the engine
const (
	ChallengePlatformer = "platformer"
	ChallengeQuiz       = "quiz"
	ChallengeCRUD       = "crud"
)

// Layer is one stage of a quest
type Layer struct {
	Type             LayerType  `json:"type" yaml:"type"`
	Order            int        `json:"order" yaml:"order"`
	TimeLimitSeconds int        `json:"timeLimitSeconds,omitempty" yaml:"timeLimitSeconds,omitempty"`
	Challenge        *Challenge `json:"challenge" yaml:"challenge"`
}

// Quest is an ordered sequence of layers. Immutable once loaded; owned by
// the session that loaded it.
type Quest struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Difficulty  string  `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Layers      []Layer `json:"layers" yaml:"layers"`
}

// Validate checks the structural invariants enforced at load time
func Validate(q *Quest) error {
	if q == nil {
		return &InvalidQuestError{Reason: "quest is nil"}
	}
	if q.ID == "" {
		return &InvalidQuestError{Reason: "missing id"}
	}
	if q.Name == "" {
		return &InvalidQuestError{QuestID: q.ID, Reason: "missing name"}
	}
	if len(q.Layers) == 0 {
		return &InvalidQuestError{QuestID: q.ID, Reason: "empty layer list"}
	}
	for i, layer := range q.Layers {
		if !layer.Type.Valid() {
			return &InvalidQuestError{QuestID: q.ID, Reason: layerReason(i, "invalid or missing type")}
		}
		if layer.Challenge == nil || layer.Challenge.Kind == "" {
			return &InvalidQuestError{QuestID: q.ID, Reason: layerReason(i, "missing challenge")}
		}
	}
	return nil
}
