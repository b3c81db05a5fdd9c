package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"astrielle/internal/engine"
)

// Astrielle console theme. Kept intentionally small: reusable styles and a
// few emojis.

const (
	IconRocket  = "🚀"
	IconSparkle = "✨"
	IconCoin    = "🪙"
	IconBox     = "📦"
	IconDice    = "🎲"
	IconRun     = "🏃"
	IconLock    = "🔒"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cEpic    = lipgloss.Color("135") // purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Epic  = lipgloss.NewStyle().Bold(true).Foreground(cEpic)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RarityStyle returns the style used for an item of the given rarity.
func RarityStyle(r engine.Rarity) lipgloss.Style {
	switch r {
	case engine.RarityLegendary:
		return Gold
	case engine.RarityEpic:
		return Epic
	case engine.RarityRare:
		return H2
	default:
		return Muted
	}
}
