package events

// DamagePayload contains the damage amount and remaining health
type DamagePayload struct {
	Amount int    `json:"amount"`
	Health int    `json:"health"`
	Source string `json:"source"` // Hazard kind, for UI feedback
}

// ScorePayload contains points awarded and the running totals
type ScorePayload struct {
	Points     int    `json:"points"`
	LayerScore int    `json:"layerScore"`
	TotalScore int    `json:"totalScore"`
	Source     string `json:"source"`
}

// LayerEnteredPayload identifies the layer being entered
type LayerEnteredPayload struct {
	QuestID   string `json:"questId"`
	Index     int    `json:"index"`
	LayerType string `json:"layerType"`
}

// LayerCompletedPayload carries the score accumulated within the layer
type LayerCompletedPayload struct {
	Index      int  `json:"index"`
	LayerScore int  `json:"layerScore"`
	TotalScore int  `json:"totalScore"`
	QuestDone  bool `json:"questDone"` // True when this was the final layer
}

// PlayerDiedPayload captures where the attempt ended
type PlayerDiedPayload struct {
	Index      int `json:"index"`
	TotalScore int `json:"totalScore"`
}

// CollectedPayload describes a single token pickup
type CollectedPayload struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	InOrder bool   `json:"inOrder"`
	Count   int    `json:"count"` // Tokens collected so far, including this one
	Total   int    `json:"total"` // Tokens the theme requires
}

// SequenceCompletePayload signals the required order was fully satisfied
type SequenceCompletePayload struct {
	Theme      string `json:"theme"`
	AllInOrder bool   `json:"allInOrder"` // False when a violation occurred along the way
	Bonus      int    `json:"bonus"`
}

// SequenceViolatedPayload describes an out-of-order pickup
type SequenceViolatedPayload struct {
	Theme    string `json:"theme"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

// GatePayload identifies a gate and the token it requires
type GatePayload struct {
	GateID     string `json:"gateId"`
	RequiresID string `json:"requiresId"`
}

// CRUDCompletePayload signals all four methods succeeded at least once
type CRUDCompletePayload struct {
	Bonus int `json:"bonus"`
}

// PopupPayload carries educational overlay content
type PopupPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
