// Package catalog supplies the session's construction-time data: the
// obtainable items, the rarity weight table, the running reward rates and
// the gated game roster. It is the external collaborator feeding the
// engine; the engine itself never touches the filesystem.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"astrielle/internal/engine"
)

// File mirrors the YAML catalog schema.
type File struct {
	Version string         `yaml:"version,omitempty"`
	Items   []ItemSpec     `yaml:"items"`
	Weights map[string]int `yaml:"weights,omitempty"`
	Rewards *RewardSpec    `yaml:"rewards,omitempty"`
	Games   []GameSpec     `yaml:"games,omitempty"`
	Idle    string         `yaml:"idle_name,omitempty"`
	Notes   string         `yaml:"notes,omitempty"`
}

type ItemSpec struct {
	Name        string `yaml:"name"`
	Rarity      string `yaml:"rarity"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category"`
}

type RewardSpec struct {
	DistancePerCoin   *int `yaml:"distance_per_coin,omitempty"`
	BonusPeriod       *int `yaml:"bonus_period,omitempty"`
	MilestoneDistance *int `yaml:"milestone_distance,omitempty"`
}

type GameSpec struct {
	Name     string `yaml:"name"`
	Requires string `yaml:"requires,omitempty"`
}

// Catalog is the normalized result of loading a file, ready to hand to
// engine.NewSession.
type Catalog struct {
	Items    []engine.Item
	Weights  map[engine.Rarity]int
	Rates    engine.RewardRates
	Games    map[string]string
	IdleName string
}

// Load reads a YAML catalog file. A missing file is not an error: the
// built-in default catalog is returned so the engine always has items to
// draw from.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(f); err != nil {
		return Catalog{}, err
	}
	return normalize(f), nil
}

func normalize(f File) Catalog {
	c := Catalog{
		Weights:  make(map[engine.Rarity]int),
		Rates:    engine.DefaultRewardRates(),
		Games:    make(map[string]string),
		IdleName: f.Idle,
	}

	for _, is := range f.Items {
		c.Items = append(c.Items, engine.Item{
			Name:        is.Name,
			Rarity:      engine.Rarity(is.Rarity),
			Description: is.Description,
			Category:    engine.Category(is.Category),
		})
	}

	if len(f.Weights) == 0 {
		c.Weights = engine.DefaultRarityWeights
	} else {
		for r, w := range f.Weights {
			c.Weights[engine.Rarity(r)] = w
		}
	}

	if f.Rewards != nil {
		if f.Rewards.DistancePerCoin != nil {
			c.Rates.DistancePerCoin = *f.Rewards.DistancePerCoin
		}
		if f.Rewards.BonusPeriod != nil {
			c.Rates.BonusPeriod = *f.Rewards.BonusPeriod
		}
		if f.Rewards.MilestoneDistance != nil {
			c.Rates.MilestoneDistance = *f.Rewards.MilestoneDistance
		}
	}

	for _, gs := range f.Games {
		c.Games[gs.Name] = gs.Requires
	}
	return c
}
