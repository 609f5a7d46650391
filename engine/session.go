package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codequest/quest-engine/events"
	"github.com/codequest/quest-engine/quest"
)

// Timing and scoring constants for one attempt
const (
	ObstacleRespawnDelay = 3 * time.Second
	PopupDuration        = 4 * time.Second
	CollectiblePoints    = 100
	RequestPoints        = 50
)

// Session owns one quest attempt: the bus, the loaded quest, the run
// state, and the current scene. Nothing is shared across attempts; a new
// attempt gets a new session.
type Session struct {
	bus    *events.Bus
	loader *quest.Loader

	attemptID uuid.UUID
	quest     *quest.Quest
	state     RunState
	scene     *Scene

	paused        bool
	elapsed       time.Duration
	layerDeadline time.Duration // 0 = no layer time limit
	timers        []deferred
}

// deferred is a callback keyed to elapsed game time. Timers belong to the
// layer that scheduled them and are dropped when that layer is torn down.
type deferred struct {
	at    time.Duration
	layer int
	fn    func()
}

// NewSession creates a session over an injected bus and loader
func NewSession(bus *events.Bus, loader *quest.Loader) *Session {
	return &Session{
		bus:    bus,
		loader: loader,
	}
}

// AttemptID identifies this attempt for logging and relayed telemetry
func (s *Session) AttemptID() uuid.UUID {
	return s.attemptID
}

// State returns a copy of the current run state
func (s *Session) State() RunState {
	return s.state
}

// Scene returns the current layer's scene, nil before Start
func (s *Session) Scene() *Scene {
	return s.scene
}

// Quest returns the loaded quest, nil before Start
func (s *Session) Quest() *quest.Quest {
	return s.quest
}

// Start loads the quest and enters its first layer. The load resolves
// fully before any layer logic runs. Run state resets to defaults: a new
// attempt never inherits health or score.
func (s *Session) Start(ctx context.Context, questID string) error {
	q, err := s.loader.Load(ctx, questID)
	if err != nil {
		return err
	}
	s.quest = q
	s.attemptID = uuid.New()
	s.state = NewRunState()
	s.paused = false
	s.elapsed = 0
	s.timers = nil
	s.enterLayer(0)
	return nil
}

// Update advances game time by one host frame tick and fires any due
// deferred callbacks. No-op while paused or once the attempt has ended.
func (s *Session) Update(dt time.Duration) {
	if s.paused || s.ended() {
		return
	}
	s.elapsed += dt

	// A layer time limit expiring ends the attempt like fatal damage.
	if s.layerDeadline > 0 && s.elapsed >= s.layerDeadline && s.state.Phase == PhaseActive {
		var emitted []events.Event
		s.state, emitted = ApplyDamage(s.state, s.state.Health, "time-limit")
		s.publishAll(emitted)
		return
	}

	// A firing timer may schedule another, so partition before firing and
	// rescan until quiescent. Timers from a torn-down layer are dropped.
	for {
		var due []func()
		remaining := make([]deferred, 0, len(s.timers))
		for _, t := range s.timers {
			if t.layer != s.state.LayerIndex {
				continue
			}
			if t.at <= s.elapsed {
				due = append(due, t.fn)
				continue
			}
			remaining = append(remaining, t)
		}
		s.timers = remaining
		if len(due) == 0 {
			return
		}
		for _, fn := range due {
			fn()
		}
	}
}

// Handle processes one collision- or challenge-driven input. Inputs are
// ignored outside the Active phase and while paused.
func (s *Session) Handle(in Input) {
	if s.paused || s.state.Phase != PhaseActive || s.scene == nil {
		return
	}

	switch v := in.(type) {
	case ObstacleHit:
		s.handleObstacleHit(v)
	case CollectibleHit:
		s.handleCollectibleHit(v)
	case GateHit:
		s.handleGateHit(v)
	case ReachedEnd:
		if s.scene.Kind == quest.ChallengePlatformer {
			s.completeLayer()
		}
	case ChallengeSolved:
		if s.scene.Kind == quest.ChallengeQuiz {
			s.addScore(v.Points, "challenge")
			s.completeLayer()
		}
	case RequestRecorded:
		s.handleRequest(v)
	}
}

// Pause suspends timers and input processing until Resume
func (s *Session) Pause() {
	if s.paused || s.ended() {
		return
	}
	s.paused = true
	s.bus.Publish(events.EventPause, nil)
}

// Resume lifts a pause
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.bus.Publish(events.EventResume, nil)
}

// Paused reports whether the session is paused
func (s *Session) Paused() bool {
	return s.paused
}

// Close tears the attempt down and clears the bus so no handler from
// this attempt fires during the next one.
func (s *Session) Close() {
	s.timers = nil
	s.scene = nil
	s.bus.Clear()
}

// --- Layer lifecycle ---

func (s *Session) enterLayer(index int) {
	layer := s.quest.Layers[index]
	s.state = EnterLayer(s.state, index)

	// Timers owned by a previous layer die with it.
	s.timers = s.timers[:0]
	s.layerDeadline = 0
	if layer.TimeLimitSeconds > 0 {
		s.layerDeadline = s.elapsed + time.Duration(layer.TimeLimitSeconds)*time.Second
	}
	s.scene = newScene(s.bus, layer)

	s.bus.Publish(events.EventLayerEntered, &events.LayerEnteredPayload{
		QuestID:   s.quest.ID,
		Index:     index,
		LayerType: string(layer.Type),
	})
	s.showPopup(layerIntroTitle(layer.Type), layerIntroBody(layer.Type))

	s.state.Phase = PhaseActive
}

func (s *Session) completeLayer() {
	next := s.state.LayerIndex + 1
	var emitted []events.Event
	s.state, emitted = CompleteLayer(s.state, len(s.quest.Layers))
	s.publishAll(emitted)

	if s.state.Phase == PhaseTransitioning {
		s.enterLayer(next)
	}
}

func (s *Session) ended() bool {
	return s.state.Phase == PhaseDying || s.state.Phase == PhaseTerminal
}

// --- Input handlers ---

func (s *Session) handleObstacleHit(hit ObstacleHit) {
	if !s.scene.ObstacleActive(hit.Index) {
		return
	}
	s.scene.hidden[hit.Index] = true
	index := hit.Index
	s.after(ObstacleRespawnDelay, func() {
		delete(s.scene.hidden, index)
	})

	var emitted []events.Event
	s.state, emitted = ApplyDamage(s.state, hit.Damage, hit.Kind)
	s.publishAll(emitted)
}

func (s *Session) handleCollectibleHit(hit CollectibleHit) {
	tracker := s.scene.Tracker
	if tracker == nil {
		return
	}
	wasComplete := tracker.Complete()
	tracker.Collect(hit.ID)

	s.addScore(CollectiblePoints, "collectible")
	if !wasComplete && tracker.Complete() {
		s.addScore(tracker.Bonus(), "sequence-bonus")
	}

	lv := s.scene.Level
	s.showPopup(lv.Theme.Label(hit.ID), fmt.Sprintf("Collected %s (%d of %d)",
		hit.ID, len(tracker.Collected()), lv.Theme.Total()))

	// Themed layers complete once the required order is satisfied.
	if tracker.Complete() && s.state.Phase == PhaseActive {
		s.completeLayer()
	}
}

func (s *Session) handleGateHit(hit GateHit) {
	tracker := s.scene.Tracker
	payload := &events.GatePayload{GateID: hit.GateID, RequiresID: hit.RequiresID}
	if tracker != nil && tracker.Unlocked(hit.RequiresID) {
		s.bus.Publish(events.EventGateUnlocked, payload)
		return
	}
	s.bus.Publish(events.EventGateLocked, payload)
}

func (s *Session) handleRequest(req RequestRecorded) {
	crud := s.scene.CRUD
	if crud == nil {
		return
	}
	wasComplete := crud.Complete()
	crud.Record(req.Method, req.Success)

	if req.Success {
		points := req.Points
		if points <= 0 {
			points = RequestPoints
		}
		s.addScore(points, "request")
	}
	if !wasComplete && crud.Complete() {
		s.addScore(crud.Bonus(), "crud-bonus")
		if s.state.Phase == PhaseActive {
			s.completeLayer()
		}
	}
}

// --- Helpers ---

func (s *Session) addScore(points int, source string) {
	var emitted []events.Event
	s.state, emitted = AddScore(s.state, points, source)
	s.publishAll(emitted)
}

func (s *Session) publishAll(emitted []events.Event) {
	for _, ev := range emitted {
		s.bus.Publish(ev.Type, ev.Payload)
	}
}

func (s *Session) after(d time.Duration, fn func()) {
	s.timers = append(s.timers, deferred{
		at:    s.elapsed + d,
		layer: s.state.LayerIndex,
		fn:    fn,
	})
}

func (s *Session) showPopup(title, body string) {
	s.bus.Publish(events.EventPopupShow, &events.PopupPayload{Title: title, Body: body})
	s.after(PopupDuration, func() {
		s.bus.Publish(events.EventPopupHide, nil)
	})
}

func layerIntroTitle(t quest.LayerType) string {
	switch t {
	case quest.LayerBrowser:
		return "The Browser"
	case quest.LayerNetwork:
		return "The Network"
	case quest.LayerAPI:
		return "The API"
	case quest.LayerDatabase:
		return "The Database"
	}
	return string(t)
}

func layerIntroBody(t quest.LayerType) string {
	switch t {
	case quest.LayerBrowser:
		return "Your request starts here: the browser builds it before anything leaves your machine."
	case quest.LayerNetwork:
		return "Packets cross the network. Complete the TCP handshake to open the connection."
	case quest.LayerAPI:
		return "The server's API routes your request. Exercise every method to master CRUD."
	case quest.LayerDatabase:
		return "Data lives here. Queries read and write what the API asked for."
	}
	return ""
}
