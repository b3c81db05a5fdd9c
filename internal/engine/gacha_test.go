package engine

import (
	"math"
	"testing"
)

func testCatalog() []Item {
	return []Item{
		{Name: "Meteorite Fragment", Rarity: RarityCommon, Category: CategoryCollectible},
		{Name: "Mining Laser", Rarity: RarityRare, Category: CategoryEquippable},
		{Name: "Gravity Boots", Rarity: RarityEpic, Category: CategoryEquippable},
		{Name: "Fuel Cell", Rarity: RarityLegendary, Category: CategoryConsumable},
	}
}

func TestNewDrawEngineValidation(t *testing.T) {
	if _, err := NewDrawEngine(nil, nil, nil); err == nil {
		t.Fatalf("empty catalog must fail construction")
	}

	missing := []Item{{Name: "Void Shard", Rarity: Rarity("Mythic")}}
	if _, err := NewDrawEngine(missing, DefaultRarityWeights, nil); err == nil {
		t.Fatalf("rarity without weight must fail construction")
	}

	if _, err := NewDrawEngine(testCatalog(), map[Rarity]int{
		RarityCommon: 1, RarityRare: 0, RarityEpic: 1, RarityLegendary: 1,
	}, nil); err == nil {
		t.Fatalf("non-positive weight must fail construction")
	}
}

func TestDrawDistribution(t *testing.T) {
	const n = 200000
	eng, err := NewDrawEngine(testCatalog(), DefaultRarityWeights, NewSeededSource(42))
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[eng.Roll().Name]++
	}

	// One item per rarity, weights 60/25/10/5 over a total of 100.
	want := map[string]float64{
		"Meteorite Fragment": 0.60,
		"Mining Laser":       0.25,
		"Gravity Boots":      0.10,
		"Fuel Cell":          0.05,
	}
	for name, p := range want {
		freq := float64(counts[name]) / float64(n)
		if math.Abs(freq-p) > 0.01 {
			t.Fatalf("%s: freq=%.4f, want ~%.2f", name, freq, p)
		}
	}
}

func TestDrawSharedRarityWeightPerItem(t *testing.T) {
	// Two commons plus one legendary. Replicate-then-choose semantics give
	// each common the FULL common weight: P = 60/125, 60/125, 5/125, not a
	// 60% bucket split between the commons.
	catalog := []Item{
		{Name: "Pebble A", Rarity: RarityCommon},
		{Name: "Pebble B", Rarity: RarityCommon},
		{Name: "Core", Rarity: RarityLegendary},
	}
	eng, err := NewDrawEngine(catalog, DefaultRarityWeights, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}

	const n = 200000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[eng.Roll().Name]++
	}

	for name, p := range map[string]float64{
		"Pebble A": 60.0 / 125.0,
		"Pebble B": 60.0 / 125.0,
		"Core":     5.0 / 125.0,
	} {
		freq := float64(counts[name]) / float64(n)
		if math.Abs(freq-p) > 0.01 {
			t.Fatalf("%s: freq=%.4f, want ~%.4f", name, freq, p)
		}
	}
}

func TestDrawReproducible(t *testing.T) {
	roll := func() []string {
		eng, err := NewDrawEngine(testCatalog(), DefaultRarityWeights, NewSeededSource(99))
		if err != nil {
			t.Fatal(err)
		}
		out := make([]string, 50)
		for i := range out {
			out[i] = eng.Roll().Name
		}
		return out
	}

	a, b := roll(), roll()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs under same seed: %s vs %s", i, a[i], b[i])
		}
	}
}
