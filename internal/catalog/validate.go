package catalog

import (
	"fmt"
	"strings"

	"astrielle/internal/engine"
)

// Validate checks semantic constraints of a catalog file. All problems are
// collected and reported at once.
func Validate(f File) error {
	var errs []string

	if len(f.Items) == 0 {
		errs = append(errs, "items must not be empty")
	}

	weights := f.Weights
	if len(weights) == 0 {
		weights = map[string]int{}
		for r, w := range engine.DefaultRarityWeights {
			weights[string(r)] = w
		}
	}
	for r, w := range weights {
		if !engine.Rarity(r).IsValid() {
			errs = append(errs, fmt.Sprintf("weights: unknown rarity %q", r))
		}
		if w <= 0 {
			errs = append(errs, fmt.Sprintf("weights[%s] must be >= 1", r))
		}
	}

	for i, is := range f.Items {
		if strings.TrimSpace(is.Name) == "" {
			errs = append(errs, fmt.Sprintf("items[%d]: name is required", i))
		}
		if !engine.Rarity(is.Rarity).IsValid() {
			errs = append(errs, fmt.Sprintf("items[%d]: invalid rarity %q", i, is.Rarity))
		} else if _, ok := weights[is.Rarity]; !ok {
			errs = append(errs, fmt.Sprintf("items[%d]: rarity %q has no weight", i, is.Rarity))
		}
		if !engine.Category(is.Category).IsValid() {
			errs = append(errs, fmt.Sprintf("items[%d]: invalid category %q", i, is.Category))
		}
	}

	if f.Rewards != nil {
		if f.Rewards.DistancePerCoin != nil && *f.Rewards.DistancePerCoin <= 0 {
			errs = append(errs, "rewards.distance_per_coin must be >= 1")
		}
		if f.Rewards.BonusPeriod != nil && *f.Rewards.BonusPeriod <= 0 {
			errs = append(errs, "rewards.bonus_period must be >= 1")
		}
		if f.Rewards.MilestoneDistance != nil && *f.Rewards.MilestoneDistance <= 0 {
			errs = append(errs, "rewards.milestone_distance must be >= 1")
		}
	}

	seen := map[string]bool{}
	for i, gs := range f.Games {
		if strings.TrimSpace(gs.Name) == "" {
			errs = append(errs, fmt.Sprintf("games[%d]: name is required", i))
			continue
		}
		if gs.Name == engine.GameRunning || gs.Name == engine.GameIdle {
			errs = append(errs, fmt.Sprintf("games[%d]: %q is a reserved name", i, gs.Name))
		}
		if seen[gs.Name] {
			errs = append(errs, fmt.Sprintf("games[%d]: duplicate name %q", i, gs.Name))
		}
		seen[gs.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
