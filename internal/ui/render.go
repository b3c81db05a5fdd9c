package ui

import (
	"fmt"
	"io"
	"sort"

	"astrielle/internal/engine"
)

// RenderSnapshot prints a session status projection. The snapshot is a
// read-only copy; rendering never touches the session.
func RenderSnapshot(w io.Writer, snap engine.Snapshot) {
	fmt.Fprintln(w, Heading(IconRocket, "Astrielle Game State"))
	fmt.Fprintln(w, LabelValue("User", snap.Name))
	fmt.Fprintln(w, LabelValue("Session", Muted.Render(snap.ID)))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, H2.Render(IconCoin+" Currency"))
	kinds := make([]string, 0, len(snap.Balances))
	for k := range snap.Balances {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "- %s %d\n", Key.Render(k+":"), snap.Balances[engine.Kind(k)])
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, H2.Render(IconBox+" Inventory"))
	if len(snap.Inventory) == 0 {
		fmt.Fprintln(w, Muted.Render("- (empty)"))
	}
	for _, line := range snap.Inventory {
		fmt.Fprintf(w, "- %s\n", line)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, H2.Render(IconRun+" Games"))
	names := make([]string, 0, len(snap.Games))
	for name := range snap.Games {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "- %s\n", snap.Games[name])
	}
}

// RenderItem prints one drawn item with its rarity color.
func RenderItem(w io.Writer, it engine.Item) {
	fmt.Fprintf(w, "%s %s\n", IconDice, RarityStyle(it.Rarity).Render(it.String()))
}
