package ui

import (
	"ashfall/ui/internal/bus"
	"ashfall/ui/internal/console"
)

// NewInventoryFilter builds the filter engine instance for item collections:
// category tabs over the item type, name/description search, and name/type/
// rarity sorting. The rarity comparator intentionally orders higher rarity
// first regardless of the direction convention used elsewhere.
func NewInventoryFilter(b *bus.Bus, c *console.Console) *Filter[Item] {
	return NewFilter(b, c, FilterConfig[Item]{
		Categories:        []string{"all", "weapons", "armor", "consumables", "misc"},
		SearchFields:      []string{"name", "description"},
		SortOptions:       []string{"name", "type", "rarity"},
		EnableSearch:      true,
		EnableSorting:     true,
		SearchPlaceholder: "Search items...",
		EventPrefix:       "inventory",
		CategoryFilters: map[string]func(Item) bool{
			"weapons":     func(item Item) bool { return item.Type == ItemTypeWeapon },
			"armor":       func(item Item) bool { return item.Type == ItemTypeArmor },
			"consumables": func(item Item) bool { return item.Type == ItemTypeConsumable },
			"misc": func(item Item) bool {
				switch item.Type {
				case ItemTypeWeapon, ItemTypeArmor, ItemTypeConsumable:
					return false
				}
				return true
			},
		},
		SortFunctions: map[string]func(a, b Item) int{
			"rarity": func(a, b Item) int {
				return b.Rarity.Rank() - a.Rarity.Rank()
			},
		},
		FieldValue: itemFieldValue,
	})
}

func itemFieldValue(item Item, path string) (any, bool) {
	switch path {
	case "id":
		return item.ID, true
	case "name":
		return item.Name, true
	case "type":
		return string(item.Type), true
	case "icon":
		return item.Icon, true
	case "rarity":
		return string(item.Rarity), true
	case "description":
		return item.Description, true
	case "damage":
		return item.Damage, true
	case "effect":
		return item.Effect, true
	case "quantity":
		return item.Quantity, true
	case "weight":
		return item.Weight, true
	}
	return nil, false
}
