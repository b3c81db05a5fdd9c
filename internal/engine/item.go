package engine

import "fmt"

// Rarity of an item, from most to least common.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// Category describes how an item is used once owned.
type Category string

const (
	CategoryEquippable  Category = "Equippable"
	CategoryConsumable  Category = "Consumable"
	CategoryCollectible Category = "Collectible"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryEquippable, CategoryConsumable, CategoryCollectible:
		return true
	default:
		return false
	}
}

// Item is an immutable catalog entry. Values are constructed once at
// catalog load and copied freely; the inventory may hold duplicates.
type Item struct {
	Name        string
	Rarity      Rarity
	Description string
	Category    Category
}

func (it Item) String() string {
	return fmt.Sprintf("%s %s Item: %s - %s", it.Rarity, it.Category, it.Name, it.Description)
}
