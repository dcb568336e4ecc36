package ui

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeKey        ItemType = "key"
	ItemTypeMisc       ItemType = "misc"
	ItemTypeJunk       ItemType = "junk"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityJunk      Rarity = "junk"
)

// Rank orders rarities for sorting. Junk and unrecognized values rank 0 so
// they sort behind everything under the higher-rarity-first comparator.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 5
	}
	return 0
}

// Item is one inventory entry. Weight 0 means unspecified and counts as 1 in
// carry-weight arithmetic.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Icon        string   `json:"icon"`
	Rarity      Rarity   `json:"rarity,omitempty"`
	Description string   `json:"description,omitempty"`
	Damage      string   `json:"damage,omitempty"`
	Effect      string   `json:"effect,omitempty"`
	Quantity    int      `json:"quantity"`
	Equipped    bool     `json:"equipped,omitempty"`
	Stackable   bool     `json:"stackable,omitempty"`
	QuestItem   bool     `json:"quest_item,omitempty"`
	Weight      float64  `json:"weight,omitempty"`
}

// CarryWeight is the item's contribution to total inventory weight.
func (i Item) CarryWeight() float64 {
	weight := i.Weight
	if weight <= 0 {
		weight = 1
	}
	quantity := i.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return weight * float64(quantity)
}

// ItemParams is the authoring shape for catalog entries; NewItem validates it
// and fills defaults.
type ItemParams struct {
	ID          string
	Name        string
	Type        ItemType
	Icon        string
	Rarity      Rarity
	Description string
	Damage      string
	Effect      string
	Quantity    int
	Equipped    bool
	Stackable   bool
	QuestItem   bool
	Weight      float64
}

func NewItem(params ItemParams) (Item, error) {
	if params.ID == "" {
		return Item{}, errors.New("item id is required")
	}
	if params.Name == "" {
		return Item{}, fmt.Errorf("item %q: name is required", params.ID)
	}
	if params.Type == "" {
		return Item{}, fmt.Errorf("item %q: type is required", params.ID)
	}
	if params.Quantity < 0 {
		return Item{}, fmt.Errorf("item %q: quantity must not be negative", params.ID)
	}
	quantity := params.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return Item{
		ID:          params.ID,
		Name:        params.Name,
		Type:        params.Type,
		Icon:        params.Icon,
		Rarity:      params.Rarity,
		Description: params.Description,
		Damage:      params.Damage,
		Effect:      params.Effect,
		Quantity:    quantity,
		Equipped:    params.Equipped,
		Stackable:   params.Stackable,
		QuestItem:   params.QuestItem,
		Weight:      params.Weight,
	}, nil
}

// NewItemID mints a unique identifier for runtime-created items.
func NewItemID(prefix string) string {
	if prefix == "" {
		prefix = "item"
	}
	return prefix + "-" + uuid.NewString()
}

// ItemPatch carries a partial update; nil fields are left untouched.
type ItemPatch struct {
	Name        *string   `json:"name,omitempty"`
	Type        *ItemType `json:"type,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Rarity      *Rarity   `json:"rarity,omitempty"`
	Description *string   `json:"description,omitempty"`
	Damage      *string   `json:"damage,omitempty"`
	Effect      *string   `json:"effect,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	Equipped    *bool     `json:"equipped,omitempty"`
	Stackable   *bool     `json:"stackable,omitempty"`
	QuestItem   *bool     `json:"quest_item,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
}

func (p ItemPatch) apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Icon != nil {
		item.Icon = *p.Icon
	}
	if p.Rarity != nil {
		item.Rarity = *p.Rarity
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Damage != nil {
		item.Damage = *p.Damage
	}
	if p.Effect != nil {
		item.Effect = *p.Effect
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Equipped != nil {
		item.Equipped = *p.Equipped
	}
	if p.Stackable != nil {
		item.Stackable = *p.Stackable
	}
	if p.QuestItem != nil {
		item.QuestItem = *p.QuestItem
	}
	if p.Weight != nil {
		item.Weight = *p.Weight
	}
}

// ItemActions lists the actions the interface may offer for an item. Quest
// items are never offered a drop action.
func ItemActions(item Item) []string {
	actions := make([]string, 0, 4)
	if item.Type == ItemTypeConsumable {
		actions = append(actions, "use")
	}
	if item.Type == ItemTypeWeapon || item.Type == ItemTypeArmor {
		if item.Equipped {
			actions = append(actions, "unequip")
		} else {
			actions = append(actions, "equip")
		}
	}
	if !item.QuestItem {
		actions = append(actions, "drop")
	}
	return append(actions, "inspect")
}
