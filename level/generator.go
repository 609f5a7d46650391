// Package level generates deterministic platformer levels from a small
// declarative challenge config. Identical configs always yield identical
// levels, so a level can be reproduced anywhere from its config alone.
package level

import "fmt"

// Geometry constants, in level-space pixels. Y grows downward.
const (
	GroundY       = 500.0 // Top edge of the ground platforms
	GroundHeight  = 40.0
	ObstacleSize  = 40.0
	CollectibleY  = GroundY - 60
	GateHeight    = 120.0
	platformBand  = 240.0 // Highest floating platform top edge
	platformReach = 400.0 // Lowest floating platform top edge
)

// Config is the declarative input to Generate
type Config struct {
	Obstacles     int      // Hazard count (default 5)
	ObstacleTypes []string // Hazard palette (default DefaultObstacleTypes)
	Length        float64  // Level length override (default 2000 + 300*Obstacles)
	Theme         string   // Collectible theme name (default "none")
	Speed         float64  // Cosmetic scroll speed, passed through untouched
}

// DefaultObstacleTypes is the hazard palette used when the challenge
// config does not name one.
var DefaultObstacleTypes = []string{"spike", "firewall", "bug", "crash"}

const defaultObstacles = 5

// Platform is a static rectangle the player can stand on
type Platform struct {
	X, Y, W, H float64
}

// Obstacle is a hazard placed in the level
type Obstacle struct {
	X, Y float64
	Kind string
}

// Collectible is a themed token with its required collection order
type Collectible struct {
	X, Y       float64
	ID         string
	Label      string
	OrderIndex int // Zero-based position in the theme's required order
}

// Gate blocks passage until its required collectible has been gathered
type Gate struct {
	X, Y       float64
	ID         string
	RequiresID string
}

// Level is the ephemeral output of Generate: created once per layer
// entry, discarded on layer exit, never persisted.
type Level struct {
	Length       float64
	Speed        float64
	Theme        Theme
	Platforms    []Platform
	Obstacles    []Obstacle
	Collectibles []Collectible
	Gates        []Gate
}

// Generate builds a full level from cfg. It is a pure function: the
// random stream is seeded from the obstacle count alone, so two calls
// with the same config produce identical output.
func Generate(cfg Config) Level {
	// 1. Resolve defaults. Invalid values degrade to defaults rather
	// than erroring; challenge configs are authored by hand.
	obstacles := cfg.Obstacles
	if obstacles <= 0 {
		obstacles = defaultObstacles
	}
	palette := cfg.ObstacleTypes
	if len(palette) == 0 {
		palette = DefaultObstacleTypes
	}
	length := cfg.Length
	if length <= 0 {
		length = 2000 + float64(obstacles)*300
	}
	theme := ThemeByName(cfg.Theme)

	// 2. Seed derivation. 7919 is the 1000th prime; the seed, and with
	// it the whole layout, is a function of the obstacle count.
	rng := newLCG(int64(obstacles) * 7919)

	lv := Level{
		Length: length,
		Speed:  cfg.Speed,
		Theme:  theme,
	}

	// Generation phases run in a fixed order so each phase consumes a
	// stable prefix of the random stream.
	lv.Platforms = groundPlatforms(rng, length)
	floating := floatingPlatforms(rng, length)
	lv.Platforms = append(lv.Platforms, floating...)
	lv.Obstacles = placeObstacles(rng, length, obstacles, palette, floating)
	lv.Collectibles = placeCollectibles(rng, length, theme, floating)
	lv.Gates = placeGates(theme, lv.Collectibles)

	return lv
}

// --- Generation Phases ---

// groundPlatforms tiles the level left to right with randomly sized
// segments separated by randomly sized gaps.
func groundPlatforms(rng *lcg, length float64) []Platform {
	var out []Platform
	x := 0.0
	for x < length {
		w := rng.rangef(150, 400)
		if x+w > length {
			w = length - x
		}
		out = append(out, Platform{X: x, Y: GroundY, W: w, H: GroundHeight})
		gap := rng.rangef(50, 150)
		x += w + gap
	}
	return out
}

// floatingPlatforms places floor(length/300) platforms at roughly even
// x-positions with jitter, within a band the player can reach.
func floatingPlatforms(rng *lcg, length float64) []Platform {
	count := int(length / 300)
	out := make([]Platform, 0, count)
	if count == 0 {
		return out
	}
	spacing := length / float64(count)
	for i := 0; i < count; i++ {
		jitter := (rng.next() - 0.5) * spacing * 0.5
		x := float64(i)*spacing + spacing/2 + jitter
		y := rng.rangef(platformBand, platformReach)
		w := rng.rangef(100, 180)
		out = append(out, Platform{X: x, Y: y, W: w, H: 20})
	}
	return out
}

// placeObstacles spreads the requested count at even x-intervals with
// jitter. Each type is drawn uniformly from the palette; with fixed
// probability an obstacle is raised onto the nearest floating platform.
func placeObstacles(rng *lcg, length float64, count int, palette []string, floating []Platform) []Obstacle {
	const raiseChance = 0.25
	out := make([]Obstacle, 0, count)
	spacing := length / float64(count+1)
	for i := 0; i < count; i++ {
		x := float64(i+1)*spacing + (rng.next()-0.5)*80
		kind := palette[rng.intn(len(palette))]
		y := GroundY - ObstacleSize
		if rng.next() < raiseChance {
			if p, ok := nearestPlatform(floating, x); ok {
				y = p.Y - ObstacleSize
			}
		}
		out = append(out, Obstacle{X: x, Y: y, Kind: kind})
	}
	return out
}

// placeCollectibles places one token per theme id, evenly spaced along
// the level in required order, snapped near a floating platform when one
// is close.
func placeCollectibles(rng *lcg, length float64, theme Theme, floating []Platform) []Collectible {
	out := make([]Collectible, 0, theme.Total())
	for i, id := range theme.IDs {
		x := length * float64(i+1) / float64(theme.Total()+1)
		y := CollectibleY
		if p, ok := nearestPlatform(floating, x); ok && absf(p.X+p.W/2-x) < 150 {
			y = p.Y - 40
		}
		out = append(out, Collectible{
			X:          x,
			Y:          y,
			ID:         id,
			Label:      theme.Labels[i],
			OrderIndex: i,
		})
	}
	return out
}

// placeGates adds one gate per collectible for gated themes, offset
// strictly to the right of the collectible it requires.
func placeGates(theme Theme, collectibles []Collectible) []Gate {
	if !theme.Gated {
		return nil
	}
	out := make([]Gate, 0, len(collectibles))
	for i, c := range collectibles {
		out = append(out, Gate{
			X:          c.X + 120 + float64(i)*40,
			Y:          GroundY - GateHeight,
			ID:         fmt.Sprintf("gate-%s", c.ID),
			RequiresID: c.ID,
		})
	}
	return out
}

// --- Helpers ---

func nearestPlatform(platforms []Platform, x float64) (Platform, bool) {
	if len(platforms) == 0 {
		return Platform{}, false
	}
	best := platforms[0]
	bestDist := absf(best.X + best.W/2 - x)
	for _, p := range platforms[1:] {
		if d := absf(p.X + p.W/2 - x); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, true
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
