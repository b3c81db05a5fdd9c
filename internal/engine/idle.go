package engine

import "fmt"

// IdleGame advances passively while the player is away. Progress and speed
// are both monotonic: there is no operation that lowers either, which is
// the modeled mechanic rather than an omission. It keeps the full playtime
// mechanics of the base entity; passive progress and playtime gating
// coexist on the same game.
type IdleGame struct {
	Game
	progress float64
	speed    float64
}

func NewIdleGame(name string) *IdleGame {
	return &IdleGame{
		Game:  Game{name: name},
		speed: 1,
	}
}

// Advance accrues elapsed*speed progress. Negative elapsed is ignored.
func (g *IdleGame) Advance(elapsedSeconds int) {
	if elapsedSeconds < 0 {
		return
	}
	g.progress += float64(elapsedSeconds) * g.speed
}

// Boost raises the speed multiplier. Negative boosts are ignored so the
// multiplier never decreases.
func (g *IdleGame) Boost(multiplier float64) {
	if multiplier < 0 {
		return
	}
	g.speed += multiplier
}

// Progress returns the accumulated progress value.
func (g *IdleGame) Progress() float64 { return g.progress }

// Speed returns the current speed multiplier.
func (g *IdleGame) Speed() float64 { return g.speed }

func (g *IdleGame) Status() string {
	return fmt.Sprintf("%s: Progress %.2f, Speed Multiplier %g, Playtime Remaining %ds",
		g.name, g.progress, g.speed, g.playtime)
}
