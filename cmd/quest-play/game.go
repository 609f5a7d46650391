package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/codequest/quest-engine/collection"
	"github.com/codequest/quest-engine/engine"
	"github.com/codequest/quest-engine/events"
	"github.com/codequest/quest-engine/geom"
	"github.com/codequest/quest-engine/level"
	"github.com/codequest/quest-engine/quest"
)

const (
	tickInterval = 33 * time.Millisecond

	playerW = 24.0
	playerH = 36.0

	moveSpeed = 260.0
	jumpSpeed = 640.0
	gravity   = 1500.0

	// Terminal key events have no release; a press holds its direction
	// for this many ticks
	holdTicks = 5

	collectibleRadius = 14.0
	quizPoints        = 250
)

// hud mirrors engine state for rendering. It is fed exclusively by bus
// events so the drawing code never reaches into the session.
type hud struct {
	health     int
	totalScore int
	layerScore int
	layerIndex int
	layerType  string
	tokens     []string
	message    string
	popupTitle string
	popupBody  string
	paused     bool
	dead       bool
	questDone  bool
}

type game struct {
	session *engine.Session
	bus     *events.Bus
	log     zerolog.Logger
	screen  tcell.Screen

	hud hud

	// Player physics, platformer layers only
	px, py   float64
	vx, vy   float64
	onGround bool
	moveDir  float64
	moveLeft int // Remaining hold ticks

	collected  map[string]bool
	touching   map[string]bool // Gates in contact last tick
	reachedEnd bool

	cancels []func()
}

func newGame(session *engine.Session, bus *events.Bus, log zerolog.Logger) *game {
	g := &game{
		session:   session,
		bus:       bus,
		log:       log,
		collected: make(map[string]bool),
		touching:  make(map[string]bool),
	}
	g.hud.health = engine.MaxHealth
	g.subscribe()
	g.resetPlayer()
	return g
}

func (g *game) subscribe() {
	sub := func(t events.Type, fn events.Handler) {
		g.cancels = append(g.cancels, g.bus.Subscribe(t, fn))
	}

	sub(events.EventDamage, func(ev events.Event) {
		p := ev.Payload.(*events.DamagePayload)
		g.hud.health = p.Health
		g.hud.message = "Hit by " + p.Source + "!"
	})
	sub(events.EventScoreAdded, func(ev events.Event) {
		p := ev.Payload.(*events.ScorePayload)
		g.hud.totalScore = p.TotalScore
		g.hud.layerScore = p.LayerScore
	})
	sub(events.EventLayerEntered, func(ev events.Event) {
		p := ev.Payload.(*events.LayerEnteredPayload)
		g.hud.layerIndex = p.Index
		g.hud.layerType = p.LayerType
		g.hud.layerScore = 0
		g.hud.tokens = nil
		g.hud.message = ""
		g.resetPlayer()
	})
	sub(events.EventLayerCompleted, func(ev events.Event) {
		p := ev.Payload.(*events.LayerCompletedPayload)
		g.hud.totalScore = p.TotalScore
		if p.QuestDone {
			g.hud.questDone = true
		}
	})
	sub(events.EventPlayerDied, func(ev events.Event) {
		p := ev.Payload.(*events.PlayerDiedPayload)
		g.hud.dead = true
		g.hud.totalScore = p.TotalScore
	})
	sub(events.EventCollectibleCollected, func(ev events.Event) {
		p := ev.Payload.(*events.CollectedPayload)
		g.hud.tokens = append(g.hud.tokens, p.Label)
		g.collected[p.ID] = true
	})
	sub(events.EventSequenceViolated, func(ev events.Event) {
		p := ev.Payload.(*events.SequenceViolatedPayload)
		g.hud.message = "Out of order! Expected " + p.Expected
	})
	sub(events.EventGateLocked, func(ev events.Event) {
		p := ev.Payload.(*events.GatePayload)
		g.hud.message = "Gate locked: collect " + p.RequiresID + " first"
	})
	sub(events.EventGateUnlocked, func(events.Event) {
		g.hud.message = "Gate unlocked"
	})
	sub(events.EventPopupShow, func(ev events.Event) {
		p := ev.Payload.(*events.PopupPayload)
		g.hud.popupTitle = p.Title
		g.hud.popupBody = p.Body
	})
	sub(events.EventPopupHide, func(events.Event) {
		g.hud.popupTitle = ""
		g.hud.popupBody = ""
	})
	sub(events.EventPause, func(events.Event) { g.hud.paused = true })
	sub(events.EventResume, func(events.Event) { g.hud.paused = false })
}

func (g *game) resetPlayer() {
	g.px = 40
	g.py = level.GroundY - playerH
	g.vx, g.vy = 0, 0
	g.onGround = true
	g.moveLeft = 0
	g.collected = make(map[string]bool)
	g.touching = make(map[string]bool)
	g.reachedEnd = false
}

func (g *game) run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	g.screen = screen
	defer screen.Fini()
	defer func() {
		for _, cancel := range g.cancels {
			cancel()
		}
	}()
	screen.HideCursor()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return nil
			}

		case <-ticker.C:
			g.session.Update(tickInterval)
			g.step(tickInterval.Seconds())
			g.draw()
		}
	}
}

func (g *game) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			g.screen.Sync()
		}
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.moveDir, g.moveLeft = -1, holdTicks
		return true
	case tcell.KeyRight:
		g.moveDir, g.moveLeft = 1, holdTicks
		return true
	case tcell.KeyUp:
		g.jump()
		return true
	}

	switch key.Rune() {
	case 'q':
		return false
	case 'h':
		g.moveDir, g.moveLeft = -1, holdTicks
	case 'l':
		g.moveDir, g.moveLeft = 1, holdTicks
	case ' ', 'k':
		g.jump()
	case 'p':
		if g.session.Paused() {
			g.session.Resume()
		} else {
			g.session.Pause()
		}
	case '1':
		g.request(collection.MethodGet)
	case '2':
		g.request(collection.MethodPost)
	case '3':
		g.request(collection.MethodPut)
	case '4':
		g.request(collection.MethodDelete)
	case 'y':
		if g.session.Scene() != nil && g.session.Scene().Kind == quest.ChallengeQuiz {
			g.session.Handle(engine.ChallengeSolved{Points: quizPoints})
		}
	}
	return true
}

func (g *game) jump() {
	if g.onGround && !g.session.Paused() {
		g.vy = -jumpSpeed
		g.onGround = false
	}
}

func (g *game) request(m collection.Method) {
	if g.session.Scene() == nil || g.session.Scene().Kind != quest.ChallengeCRUD {
		return
	}
	g.session.Handle(engine.RequestRecorded{Method: m, Success: true, Points: engine.RequestPoints})
	g.hud.message = "Sent " + string(m)
}

// step advances player physics and feeds resulting collisions into the
// session. Non-platformer layers have no physics.
func (g *game) step(dt float64) {
	scene := g.session.Scene()
	if scene == nil || scene.Level == nil || g.session.Paused() {
		return
	}
	if g.hud.dead || g.hud.questDone {
		return
	}
	lv := scene.Level

	if g.moveLeft > 0 {
		g.vx = g.moveDir * moveSpeed
		g.moveLeft--
	} else {
		g.vx = 0
	}

	g.vy += gravity * dt
	g.px += g.vx * dt
	g.py += g.vy * dt
	if g.px < 0 {
		g.px = 0
	}

	g.landOnPlatforms(lv)
	g.blockAtGates(scene)
	g.hitObstacles(scene)
	g.pickCollectibles(scene)

	if g.py > level.GroundY+400 {
		// Fell into a pit: respawn at the layer start
		g.resetPlayer()
		return
	}

	if !g.reachedEnd && g.px+playerW >= lv.Length {
		g.reachedEnd = true
		g.session.Handle(engine.ReachedEnd{})
	}
}

func (g *game) landOnPlatforms(lv *level.Level) {
	if g.vy < 0 {
		g.onGround = false
		return
	}
	bottom := g.py + playerH
	landed := false
	for _, p := range lv.Platforms {
		if g.px+playerW <= p.X || g.px >= p.X+p.W {
			continue
		}
		// Land only when falling through the platform's top this tick
		if bottom >= p.Y && bottom-g.vy*tickInterval.Seconds() <= p.Y+1 {
			g.py = p.Y - playerH
			g.vy = 0
			landed = true
			break
		}
	}
	g.onGround = landed
}

func (g *game) blockAtGates(scene *engine.Scene) {
	player := g.playerRect()
	for _, gate := range scene.Level.Gates {
		r := geom.Rect{X: gate.X, Y: gate.Y, W: 10, H: level.GateHeight}
		if !geom.Overlaps(player, r) {
			delete(g.touching, gate.ID)
			continue
		}
		unlocked := scene.Tracker != nil && scene.Tracker.Unlocked(gate.RequiresID)
		if !unlocked {
			g.px = gate.X - playerW
			player = g.playerRect()
		}
		if !g.touching[gate.ID] {
			g.touching[gate.ID] = true
			g.session.Handle(engine.GateHit{GateID: gate.ID, RequiresID: gate.RequiresID})
		}
	}
}

func (g *game) hitObstacles(scene *engine.Scene) {
	player := g.playerRect()
	for i, o := range scene.Level.Obstacles {
		if !scene.ObstacleActive(i) {
			continue
		}
		r := geom.Rect{X: o.X, Y: o.Y, W: level.ObstacleSize, H: level.ObstacleSize}
		if geom.Overlaps(player, r) {
			g.session.Handle(engine.ObstacleHit{Index: i, Kind: o.Kind})
		}
	}
}

func (g *game) pickCollectibles(scene *engine.Scene) {
	center := geom.Circle{X: g.px + playerW/2, Y: g.py + playerH/2, R: playerH / 2}
	for _, c := range scene.Level.Collectibles {
		if g.collected[c.ID] {
			continue
		}
		token := geom.Circle{X: c.X, Y: c.Y, R: collectibleRadius}
		if geom.OverlapsCircle(center, token) {
			g.collected[c.ID] = true
			g.session.Handle(engine.CollectibleHit{ID: c.ID})
		}
	}
}

func (g *game) playerRect() geom.Rect {
	return geom.Rect{X: g.px, Y: g.py, W: playerW, H: playerH}
}
