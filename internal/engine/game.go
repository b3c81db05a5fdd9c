package engine

import "fmt"

// Entity is the capability set shared by every playable activity. The
// three variants are the generic gated game, the running game and the
// idle game.
type Entity interface {
	Name() string
	// AddPlaytime credits seconds of playtime budget. No cap.
	AddPlaytime(seconds int)
	// Play consumes playtime and reports success. On insufficient budget
	// nothing changes and false is returned.
	Play(seconds int) bool
	// PlaytimeRemaining is the current budget in seconds.
	PlaytimeRemaining() int
	// CanPlay reports whether the inventory satisfies the entity's unlock
	// requirement. Presence only; nothing is consumed. Play does not call
	// this — composing the two is the caller's decision.
	CanPlay(inventory []Item) bool
	// Status returns a one-line human-readable summary.
	Status() string
}

// Game is the generic entity: a named activity with a playtime budget and
// an optional unlock item.
type Game struct {
	name         string
	requiredItem string
	playtime     int
}

// NewGame creates a generic entity. requiredItem may be empty for an
// ungated game.
func NewGame(name, requiredItem string) *Game {
	return &Game{name: name, requiredItem: requiredItem}
}

func (g *Game) Name() string { return g.name }

// PlaytimeRemaining returns the current playtime budget in seconds.
func (g *Game) PlaytimeRemaining() int { return g.playtime }

func (g *Game) AddPlaytime(seconds int) {
	if seconds < 0 {
		return
	}
	g.playtime += seconds
}

func (g *Game) Play(seconds int) bool {
	if seconds < 0 || g.playtime < seconds {
		return false
	}
	g.playtime -= seconds
	return true
}

func (g *Game) CanPlay(inventory []Item) bool {
	if g.requiredItem == "" {
		return true
	}
	for _, it := range inventory {
		if it.Name == g.requiredItem {
			return true
		}
	}
	return false
}

// RequiredItem returns the unlock item name, empty if the game is ungated.
func (g *Game) RequiredItem() string { return g.requiredItem }

func (g *Game) Status() string {
	req := g.requiredItem
	if req == "" {
		req = "None"
	}
	return fmt.Sprintf("%s: Playtime Remaining %ds, Requires: %s", g.name, g.playtime, req)
}
