package ui

// Event names relayed over the bus. Inbound events are consumed by the
// inventory store; outbound events are published by it (or by the filter
// engine, whose names derive from its EventPrefix).
const (
	EventInventoryAdd    = "inventory:add"
	EventInventoryRemove = "inventory:remove"
	EventInventoryUpdate = "inventory:update"
	EventInventoryClear  = "inventory:clear"
	EventPlayerItemUse   = "player:item-use"
	EventPlayerItemEquip = "player:item-equip"

	EventInventoryRefresh = "inventory:refresh"
	EventInventoryChanged = "inventory:changed"
	EventItemUsed         = "inventory:item-used"
	EventItemEquipped     = "inventory:item-equipped"
	EventItemDropped      = "inventory:item-dropped"
	EventItemClicked      = "inventory:item-clicked"
	EventJunkDropped      = "inventory:junk-dropped"
	EventInspectorDisplay = "object-inspector:display"
)

type AddItemPayload struct {
	Item Item `json:"item"`
}

type RemoveItemPayload struct {
	ItemID string `json:"itemId"`
}

type UpdateItemPayload struct {
	ItemID  string    `json:"itemId"`
	Updates ItemPatch `json:"updates"`
}

type UseItemPayload struct {
	ItemID string `json:"itemId"`
}

type EquipItemPayload struct {
	ItemID string `json:"itemId"`
}

type ItemUsedPayload struct {
	Item Item `json:"item"`
}

type ItemEquippedPayload struct {
	Item     Item `json:"item"`
	Equipped bool `json:"equipped"`
}

type ItemDroppedPayload struct {
	Item Item `json:"item"`
}

type ItemClickedPayload struct {
	Item   Item   `json:"item"`
	Action string `json:"action"`
}

type JunkDroppedPayload struct {
	Count int `json:"count"`
}

// InspectorObject is the flattened view of an item shown in the object
// inspector panel.
type InspectorObject struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Rarity      string   `json:"rarity"`
	Description string   `json:"description"`
	Damage      string   `json:"damage,omitempty"`
	Effect      string   `json:"effect,omitempty"`
	Quantity    int      `json:"quantity,omitempty"`
	Status      string   `json:"status,omitempty"`
	Special     string   `json:"special,omitempty"`
	Actions     []string `json:"actions,omitempty"`
}

type InspectorPayload struct {
	Object   InspectorObject `json:"object"`
	Category string          `json:"category"`
}
