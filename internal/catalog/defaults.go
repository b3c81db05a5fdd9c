package catalog

import "astrielle/internal/engine"

// Default returns the built-in catalog used when no catalog file exists.
func Default() Catalog {
	return Catalog{
		Items: []engine.Item{
			{Name: "Meteorite Fragment", Rarity: engine.RarityCommon, Description: "A small chunk of space rock.", Category: engine.CategoryCollectible},
			{Name: "Mining Laser", Rarity: engine.RarityRare, Description: "Required to play Asteroid Mining.", Category: engine.CategoryEquippable},
			{Name: "Gravity Boots", Rarity: engine.RarityEpic, Description: "Required to play Zero-G Racing.", Category: engine.CategoryEquippable},
			{Name: "Fuel Cell", Rarity: engine.RarityLegendary, Description: "Doubles playtime of any game when used.", Category: engine.CategoryConsumable},
		},
		Weights: engine.DefaultRarityWeights,
		Rates:   engine.DefaultRewardRates(),
		Games: map[string]string{
			"Asteroid Mining": "Mining Laser",
			"Zero-G Racing":   "Gravity Boots",
		},
		IdleName: "Space Colony Expansion",
	}
}
