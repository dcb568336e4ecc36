package ui

const defaultMaxSlots = 20

// seedItems builds the starting inventory handed to a fresh session before
// any persisted snapshot is merged over it.
func seedItems() []Item {
	return []Item{
		mustItem(ItemParams{
			ID:          "iron-sword",
			Name:        "Iron Sword",
			Type:        ItemTypeWeapon,
			Icon:        "fas fa-sword",
			Rarity:      RarityCommon,
			Damage:      "8-12",
			Description: "A sturdy iron blade, well-balanced for combat.",
			Equipped:    true,
		}),
		mustItem(ItemParams{
			ID:          "health-potion",
			Name:        "Health Potion",
			Type:        ItemTypeConsumable,
			Icon:        "fas fa-flask",
			Rarity:      RarityCommon,
			Effect:      "Restores 50 HP",
			Description: "A red liquid that quickly heals wounds.",
			Quantity:    3,
			Stackable:   true,
		}),
		mustItem(ItemParams{
			ID:          "ancient-key",
			Name:        "Ancient Key",
			Type:        ItemTypeKey,
			Icon:        "fas fa-key",
			Rarity:      RarityRare,
			Description: "An ornate key with mysterious engravings.",
			QuestItem:   true,
		}),
	}
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		Items:      seedItems(),
		MaxSlots:   defaultMaxSlots,
		Categories: []string{"all", "weapons", "armor", "consumables", "misc"},
	}
}

func mustItem(params ItemParams) Item {
	item, err := NewItem(params)
	if err != nil {
		panic(err)
	}
	return item
}
