package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/codequest/quest-engine/engine"
	"github.com/codequest/quest-engine/level"
	"github.com/codequest/quest-engine/quest"
)

// World-to-cell scale. Terminal cells are roughly twice as tall as wide,
// so the vertical scale is doubled to keep proportions playable.
const (
	cellW = 10.0
	cellH = 20.0

	// Top of the rendered world band in level coordinates
	worldTop = 180.0

	hudRows = 3
)

var (
	styleDefault     = tcell.StyleDefault
	stylePlatform    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleObstacle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCollectible = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGateLocked  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleGateOpen    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePopup       = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

var obstacleRunes = map[string]rune{
	"spike":    '^',
	"firewall": '#',
	"bug":      'b',
	"crash":    'X',
}

func (g *game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()

	scene := g.session.Scene()
	switch {
	case g.hud.dead:
		g.drawCenteredPanel(w, h, "GAME OVER", fmt.Sprintf("Final score: %d  (q to quit)", g.hud.totalScore))
	case g.hud.questDone:
		g.drawCenteredPanel(w, h, "QUEST COMPLETE", fmt.Sprintf("Final score: %d  (q to quit)", g.hud.totalScore))
	case scene != nil && scene.Level != nil:
		g.drawLevel(w, scene)
	case scene != nil:
		g.drawChallengePanel(w, h, scene)
	}

	g.drawHUD(w)
	if g.hud.popupTitle != "" {
		g.drawPopup(w, h)
	}
	if g.hud.paused {
		g.drawText((w-8)/2, h/2, stylePlayer, "- PAUSED -")
	}
	g.screen.Show()
}

func (g *game) drawLevel(w int, scene *engine.Scene) {
	// Camera keeps the player a third of the way across the screen
	camX := g.px - float64(w)*cellW/3
	if camX < 0 {
		camX = 0
	}

	toCell := func(x, y float64) (int, int) {
		return int((x - camX) / cellW), hudRows + int((y-worldTop)/cellH)
	}
	visible := func(cx int) bool { return cx >= 0 && cx < w }

	for _, p := range scene.Level.Platforms {
		cx, cy := toCell(p.X, p.Y)
		for i := 0; i < int(p.W/cellW); i++ {
			if visible(cx + i) {
				g.screen.SetContent(cx+i, cy, '=', nil, stylePlatform)
			}
		}
	}

	for i, o := range scene.Level.Obstacles {
		if !scene.ObstacleActive(i) {
			continue
		}
		cx, cy := toCell(o.X, o.Y)
		r, ok := obstacleRunes[o.Kind]
		if !ok {
			r = '!'
		}
		if visible(cx) {
			g.screen.SetContent(cx, cy, r, nil, styleObstacle)
			g.screen.SetContent(cx, cy+1, r, nil, styleObstacle)
		}
	}

	for _, c := range scene.Level.Collectibles {
		if g.collected[c.ID] {
			continue
		}
		cx, cy := toCell(c.X, c.Y)
		if visible(cx) {
			g.screen.SetContent(cx, cy, '*', nil, styleCollectible)
			g.drawText(cx+1, cy, styleCollectible, c.Label)
		}
	}

	for _, gate := range scene.Level.Gates {
		style := styleGateOpen
		if scene.Tracker != nil && !scene.Tracker.Unlocked(gate.RequiresID) {
			style = styleGateLocked
		}
		cx, cy := toCell(gate.X, gate.Y)
		if visible(cx) {
			for i := 0; i < int(level.GateHeight/cellH); i++ {
				g.screen.SetContent(cx, cy+i, '|', nil, style)
			}
		}
	}

	// End marker
	ex, ey := toCell(scene.Level.Length, level.GroundY-80)
	if visible(ex) {
		for i := 0; i < 4; i++ {
			g.screen.SetContent(ex, ey+i, '$', nil, styleCollectible)
		}
	}

	pcx, pcy := toCell(g.px, g.py)
	if visible(pcx) {
		g.screen.SetContent(pcx, pcy, '@', nil, stylePlayer)
		g.screen.SetContent(pcx, pcy+1, '#', nil, stylePlayer)
	}
}

func (g *game) drawChallengePanel(w, h int, scene *engine.Scene) {
	var title, body string
	switch scene.Kind {
	case quest.ChallengeCRUD:
		title = "API CHALLENGE"
		body = "Send each request once: [1] GET  [2] POST  [3] PUT  [4] DELETE"
	case quest.ChallengeQuiz:
		title = "QUIZ CHALLENGE"
		body = "Press [y] when you have the answer"
	default:
		title = "..."
		body = "Nothing to do here"
	}
	g.drawCenteredPanel(w, h, title, body)
}

func (g *game) drawHUD(w int) {
	line := fmt.Sprintf(" HP %3d | Score %5d | Layer %d %-8s | %s",
		g.hud.health, g.hud.totalScore, g.hud.layerIndex+1, g.hud.layerType, g.session.Quest().Name)
	g.drawText(0, 0, styleHUD, pad(line, w))

	tokens := " Collected:"
	for _, t := range g.hud.tokens {
		tokens += " [" + t + "]"
	}
	g.drawText(0, 1, styleCollectible, pad(tokens, w))
	g.drawText(0, 2, styleDefault, pad(" "+g.hud.message, w))
}

func (g *game) drawPopup(w, h int) {
	width := len(g.hud.popupBody) + 4
	if tw := len(g.hud.popupTitle) + 4; tw > width {
		width = tw
	}
	if width > w-2 {
		width = w - 2
	}
	x := (w - width) / 2
	y := h/2 - 2

	for row := 0; row < 4; row++ {
		g.drawText(x, y+row, stylePopup, pad("", width))
	}
	g.drawText(x+2, y+1, stylePopup.Bold(true), clip(g.hud.popupTitle, width-4))
	g.drawText(x+2, y+2, stylePopup, clip(g.hud.popupBody, width-4))
}

func (g *game) drawCenteredPanel(w, h int, title, body string) {
	g.drawText((w-len(title))/2, h/2-1, stylePlayer, title)
	g.drawText((w-len(body))/2, h/2+1, styleDefault, body)
}

func (g *game) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func pad(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	return s
}

func clip(s string, w int) string {
	if w < 0 {
		return ""
	}
	if len(s) > w {
		return s[:w]
	}
	return s
}
