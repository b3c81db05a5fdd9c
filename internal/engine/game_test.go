package engine

import (
	"strings"
	"testing"
)

func TestGamePlaytime(t *testing.T) {
	g := NewGame("Asteroid Mining", "Mining Laser")
	g.AddPlaytime(100)

	if ok := g.Play(101); ok {
		t.Fatalf("play above budget succeeded")
	}
	if got := g.PlaytimeRemaining(); got != 100 {
		t.Fatalf("failed play changed budget: %d", got)
	}

	if ok := g.Play(100); !ok {
		t.Fatalf("play at exact budget refused")
	}
	if got := g.PlaytimeRemaining(); got != 0 {
		t.Fatalf("budget after play = %d, want 0", got)
	}

	g.AddPlaytime(-5)
	if got := g.PlaytimeRemaining(); got != 0 {
		t.Fatalf("negative add changed budget: %d", got)
	}
}

func TestGameCanPlay(t *testing.T) {
	laser := Item{Name: "Mining Laser", Rarity: RarityRare, Category: CategoryEquippable}

	tests := []struct {
		name      string
		required  string
		inventory []Item
		want      bool
	}{
		{"ungated", "", nil, true},
		{"gated missing item", "Mining Laser", nil, false},
		{"gated with item", "Mining Laser", []Item{laser}, true},
		{"gated wrong item", "Gravity Boots", []Item{laser}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame("g", tt.required)
			if got := g.CanPlay(tt.inventory); got != tt.want {
				t.Fatalf("CanPlay=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameCanPlayDoesNotConsume(t *testing.T) {
	inv := []Item{{Name: "Mining Laser"}}
	g := NewGame("Asteroid Mining", "Mining Laser")
	for i := 0; i < 3; i++ {
		if !g.CanPlay(inv) {
			t.Fatalf("CanPlay false on check %d", i)
		}
	}
	if len(inv) != 1 {
		t.Fatalf("unlock check consumed the item")
	}
}

func TestIdleGameMonotonic(t *testing.T) {
	g := NewIdleGame("Space Colony Expansion")

	g.Advance(60)
	if got := g.Progress(); got != 60 {
		t.Fatalf("progress after 60s at x1 = %f, want 60", got)
	}

	g.Boost(0.5)
	g.Boost(-3) // ignored
	if got := g.Speed(); got != 1.5 {
		t.Fatalf("speed = %f, want 1.5", got)
	}

	g.Advance(10)
	if got := g.Progress(); got != 75 {
		t.Fatalf("progress = %f, want 75", got)
	}

	prev := g.Progress()
	g.Advance(-10) // ignored
	g.Advance(0)
	if g.Progress() < prev {
		t.Fatalf("progress decreased: %f -> %f", prev, g.Progress())
	}
}

func TestIdleGameKeepsPlaytimeMechanics(t *testing.T) {
	g := NewIdleGame("Space Colony Expansion")
	g.AddPlaytime(30)
	if !g.Play(20) {
		t.Fatalf("idle game refused play within budget")
	}
	if got := g.PlaytimeRemaining(); got != 10 {
		t.Fatalf("playtime = %d, want 10", got)
	}
}

func TestGameStatus(t *testing.T) {
	g := NewGame("Zero-G Racing", "Gravity Boots")
	g.AddPlaytime(45)
	want := "Zero-G Racing: Playtime Remaining 45s, Requires: Gravity Boots"
	if got := g.Status(); got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}

	ungated := NewGame("Training", "")
	if got := ungated.Status(); !strings.HasSuffix(got, "Requires: None") {
		t.Fatalf("ungated status = %q", got)
	}
}
