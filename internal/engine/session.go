package engine

import (
	"sort"

	"github.com/google/uuid"
)

// Well-known entity names in a session's game map.
const (
	GameRunning = "Running"
	GameIdle    = "Idle"
)

// Session is one player's self-contained game state: a ledger, an ordered
// inventory, a fixed map of game entities and a draw engine bound to a
// catalog snapshot. Nothing here is shared across sessions, so no locking
// is needed anywhere.
type Session struct {
	id        string
	name      string
	ledger    *Ledger
	inventory []Item
	games     map[string]Entity
	running   *RunningGame
	idle      *IdleGame
	gacha     *DrawEngine
}

// SessionConfig carries the construction-time wiring of a session. Catalog
// is required; zero values elsewhere fall back to stock defaults.
type SessionConfig struct {
	Name    string
	Catalog []Item
	Weights map[Rarity]int
	Rates   RewardRates
	// GatedGames maps game name to required unlock item. These are added
	// alongside the fixed Running and Idle entities.
	GatedGames map[string]string
	// IdleName labels the idle game; defaults to "Space Colony Expansion".
	IdleName string
	RNG      RandomSource
}

// NewSession wires up a session. The entity key set is fixed here; no
// games are added or removed afterwards.
func NewSession(cfg SessionConfig) (*Session, error) {
	gacha, err := NewDrawEngine(cfg.Catalog, cfg.Weights, cfg.RNG)
	if err != nil {
		return nil, err
	}

	idleName := cfg.IdleName
	if idleName == "" {
		idleName = "Space Colony Expansion"
	}

	running := NewRunningGame(cfg.Rates)
	idle := NewIdleGame(idleName)

	games := map[string]Entity{
		GameRunning: running,
		GameIdle:    idle,
	}
	for name, required := range cfg.GatedGames {
		games[name] = NewGame(name, required)
	}

	return &Session{
		id:      uuid.NewString(),
		name:    cfg.Name,
		ledger:  NewLedger(),
		games:   games,
		running: running,
		idle:    idle,
		gacha:   gacha,
	}, nil
}

func (s *Session) ID() string   { return s.id }
func (s *Session) Name() string { return s.name }

// Ledger exposes the session's ledger for reward grants and spending.
func (s *Session) Ledger() *Ledger { return s.ledger }

// Inventory returns a copy of the inventory in acquisition order.
func (s *Session) Inventory() []Item {
	return append([]Item(nil), s.inventory...)
}

// Entity looks up a game by name.
func (s *Session) Entity(name string) (Entity, bool) {
	e, ok := s.games[name]
	return e, ok
}

// Run processes a running session: currency rewards to the ledger and the
// elapsed time fanned out as playtime to every other game.
func (s *Session) Run(distance, seconds int) {
	s.running.Progress(distance, seconds, s.ledger, s.games)
}

// IdleProgress advances the idle game's passive progress.
func (s *Session) IdleProgress(seconds int) {
	s.idle.Advance(seconds)
}

// BoostIdle raises the idle game's speed multiplier.
func (s *Session) BoostIdle(multiplier float64) {
	s.idle.Boost(multiplier)
}

// RollGacha spends one gacha token and draws an item into the inventory,
// returning it. With no tokens it returns nil and changes nothing.
func (s *Session) RollGacha() *Item {
	if !s.ledger.Spend(KindGachaToken, 1) {
		return nil
	}
	it := s.gacha.Roll()
	s.inventory = append(s.inventory, it)
	return &it
}

// UseItem consumes the first inventory item matching itemName that is a
// Consumable, doubling the target game's playtime by re-adding its current
// remaining value. Exactly one copy is removed; duplicates stay. A missing
// consumable or an unknown game returns ItemNotUsableError with no state
// change (in particular the item is not consumed against a bad game name).
func (s *Session) UseItem(itemName, gameName string) (string, error) {
	for i, it := range s.inventory {
		if it.Name != itemName || it.Category != CategoryConsumable {
			continue
		}
		game, ok := s.games[gameName]
		if !ok {
			break
		}
		game.AddPlaytime(game.PlaytimeRemaining())
		s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
		return "Used " + itemName + " on " + gameName + ". Playtime doubled!", nil
	}
	return "", ItemNotUsableError{Item: itemName, Game: gameName}
}

// Snapshot is the read-only status projection handed to display layers.
type Snapshot struct {
	ID        string
	Name      string
	Balances  map[Kind]int
	Inventory []string
	Games     map[string]string
}

// Status projects the current state for display. It mutates nothing; the
// maps and slices are fresh copies.
func (s *Session) Status() Snapshot {
	inv := make([]string, len(s.inventory))
	for i, it := range s.inventory {
		inv[i] = it.String()
	}
	games := make(map[string]string, len(s.games))
	for name, e := range s.games {
		games[name] = e.Status()
	}
	return Snapshot{
		ID:        s.id,
		Name:      s.name,
		Balances:  s.ledger.Balances(),
		Inventory: inv,
		Games:     games,
	}
}

// GameNames returns the entity names sorted for stable display.
func (s *Session) GameNames() []string {
	names := make([]string, 0, len(s.games))
	for name := range s.games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
