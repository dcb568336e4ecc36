package ui

import (
	"sync"

	"ashfall/ui/internal/bus"
	"ashfall/ui/internal/console"
	"ashfall/ui/internal/storage"
)

const inventoryStorageKey = "inventory"

// Snapshot is the canonical persisted inventory: the ordered item sequence
// plus capacity metadata. MaxSlots is presentation capacity, not an enforced
// cap; Categories feed the filter tab row.
type Snapshot struct {
	Items      []Item   `json:"items"`
	MaxSlots   int      `json:"maxSlots"`
	Categories []string `json:"categories"`
}

func (s Snapshot) clone() Snapshot {
	copied := s
	copied.Items = append([]Item(nil), s.Items...)
	copied.Categories = append([]string(nil), s.Categories...)
	return copied
}

// Store owns the inventory snapshot. Every mutation persists the snapshot and
// re-publishes inventory:refresh, so an active renderer always recomputes
// from fresh data. Mutate, persist, and publish run under one mutex-guarded
// critical section followed by the broadcast, keeping a mutation fully
// visible before the next event is handled.
type Store struct {
	mu      sync.Mutex
	data    Snapshot
	bus     *bus.Bus
	storage *storage.Store
	console *console.Console
	filter  *Filter[Item]
	unsubs  []func()
}

func NewStore(b *bus.Bus, st *storage.Store, c *console.Console, filter *Filter[Item]) *Store {
	if c == nil {
		c = console.New(console.Config{})
	}
	return &Store{
		data:    defaultSnapshot(),
		bus:     b,
		storage: st,
		console: c,
		filter:  filter,
	}
}

// Initialize loads any persisted snapshot over the seed defaults and wires
// the mutation event subscriptions.
func (s *Store) Initialize() error {
	s.console.System("Inventory module initializing...")

	s.mu.Lock()
	hadSaved := s.storage.Has(inventoryStorageKey)
	s.data = storage.Get(s.storage, inventoryStorageKey, s.data)
	s.mu.Unlock()
	if hadSaved {
		s.console.Info("Loaded inventory from storage")
	}

	s.subscribe()
	s.console.Success("Inventory module initialized")
	return nil
}

// Dispose drops the store's event subscriptions. A disposed store keeps its
// in-memory snapshot but no longer reacts to bus traffic.
func (s *Store) Dispose() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

func (s *Store) subscribe() {
	s.unsubs = append(s.unsubs,
		s.bus.Subscribe(EventInventoryAdd, func(payload any) {
			if data, ok := payload.(AddItemPayload); ok {
				s.Add(data.Item)
			} else {
				s.warnPayload(EventInventoryAdd, payload)
			}
		}),
		s.bus.Subscribe(EventInventoryRemove, func(payload any) {
			if data, ok := payload.(RemoveItemPayload); ok {
				s.Remove(data.ItemID)
			} else {
				s.warnPayload(EventInventoryRemove, payload)
			}
		}),
		s.bus.Subscribe(EventInventoryUpdate, func(payload any) {
			if data, ok := payload.(UpdateItemPayload); ok {
				s.Update(data.ItemID, data.Updates)
			} else {
				s.warnPayload(EventInventoryUpdate, payload)
			}
		}),
		s.bus.Subscribe(EventInventoryClear, func(payload any) {
			s.Clear()
		}),
		s.bus.Subscribe(EventPlayerItemUse, func(payload any) {
			if data, ok := payload.(UseItemPayload); ok {
				s.Use(data.ItemID)
			} else {
				s.warnPayload(EventPlayerItemUse, payload)
			}
		}),
		s.bus.Subscribe(EventPlayerItemEquip, func(payload any) {
			if data, ok := payload.(EquipItemPayload); ok {
				s.Equip(data.ItemID)
			} else {
				s.warnPayload(EventPlayerItemEquip, payload)
			}
		}),
	)
}

func (s *Store) warnPayload(event string, payload any) {
	s.console.Warning("Discarding %s event with unexpected payload %T", event, payload)
}

// Data returns a deep-copied read-only view of the snapshot.
func (s *Store) Data() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.clone()
}

// GenerateContent renders the inventory screen from the current snapshot and
// filter state.
func (s *Store) GenerateContent() string {
	return BuildInventoryView(s.Data(), s.filter).HTML()
}

// Add appends item to the sequence. Uniqueness of the id is the caller's
// contract; Add itself performs no check.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	s.data.Items = append(s.data.Items, item)
	s.persistLocked()
	s.mu.Unlock()

	s.console.Success("Added %s to inventory", item.Name)
	s.publishRefresh()
}

// Remove splices out the item with the given id. An unknown id is a logged
// no-op.
func (s *Store) Remove(itemID string) (Item, bool) {
	s.mu.Lock()
	index := s.indexLocked(itemID)
	if index < 0 {
		s.mu.Unlock()
		s.console.Warning("Item not found: %s", itemID)
		return Item{}, false
	}
	removed := s.data.Items[index]
	s.data.Items = append(s.data.Items[:index], s.data.Items[index+1:]...)
	s.persistLocked()
	s.mu.Unlock()

	s.console.Info("Removed %s from inventory", removed.Name)
	s.publishRefresh()
	return removed, true
}

// Update shallow-merges the patch into the matching record.
func (s *Store) Update(itemID string, patch ItemPatch) {
	s.mu.Lock()
	index := s.indexLocked(itemID)
	if index < 0 {
		s.mu.Unlock()
		s.console.Warning("Item not found: %s", itemID)
		return
	}
	patch.apply(&s.data.Items[index])
	s.persistLocked()
	s.mu.Unlock()

	s.publishRefresh()
}

// Clear empties the item sequence.
func (s *Store) Clear() {
	s.mu.Lock()
	s.data.Items = make([]Item, 0)
	s.persistLocked()
	s.mu.Unlock()

	s.console.Warning("Inventory cleared")
	s.publishRefresh()
}

// Use consumes one unit: a stackable record above one unit decrements, any
// other record is removed outright.
func (s *Store) Use(itemID string) {
	s.mu.Lock()
	index := s.indexLocked(itemID)
	if index < 0 {
		s.mu.Unlock()
		s.console.Warning("Item not found: %s", itemID)
		return
	}
	var used Item
	if item := &s.data.Items[index]; item.Stackable && item.Quantity > 1 {
		item.Quantity--
		used = *item
	} else {
		used = *item
		s.data.Items = append(s.data.Items[:index], s.data.Items[index+1:]...)
	}
	s.persistLocked()
	s.mu.Unlock()

	s.console.Success("Used %s", used.Name)
	s.bus.Publish(EventItemUsed, ItemUsedPayload{Item: used})
	s.publishRefresh()
}

// Equip toggles the equipped flag of the matching record.
func (s *Store) Equip(itemID string) {
	s.mu.Lock()
	index := s.indexLocked(itemID)
	if index < 0 {
		s.mu.Unlock()
		s.console.Warning("Item not found: %s", itemID)
		return
	}
	s.data.Items[index].Equipped = !s.data.Items[index].Equipped
	item := s.data.Items[index]
	s.persistLocked()
	s.mu.Unlock()

	if item.Equipped {
		s.console.Info("Equipped %s", item.Name)
	} else {
		s.console.Info("Unequipped %s", item.Name)
	}
	s.bus.Publish(EventItemEquipped, ItemEquippedPayload{Item: item, Equipped: item.Equipped})
	s.publishRefresh()
}

// Drop removes an item at the player's request and announces the drop.
// Quest items refuse to be dropped.
func (s *Store) Drop(itemID string) {
	s.mu.Lock()
	index := s.indexLocked(itemID)
	if index < 0 {
		s.mu.Unlock()
		s.console.Warning("Item not found: %s", itemID)
		return
	}
	item := s.data.Items[index]
	if item.QuestItem {
		s.mu.Unlock()
		s.console.Warning("Cannot drop quest item %s", item.Name)
		return
	}
	s.data.Items = append(s.data.Items[:index], s.data.Items[index+1:]...)
	s.persistLocked()
	s.mu.Unlock()

	s.console.Warning("Dropped %s", item.Name)
	s.bus.Publish(EventItemDropped, ItemDroppedPayload{Item: item})
	s.publishRefresh()
}

// DropJunk removes every record whose rarity or type is junk in one batch,
// preserving the relative order of the survivors, and reports the count.
func (s *Store) DropJunk() int {
	s.mu.Lock()
	kept := make([]Item, 0, len(s.data.Items))
	removed := 0
	for _, item := range s.data.Items {
		if item.Rarity == RarityJunk || item.Type == ItemTypeJunk {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.data.Items = kept
	s.persistLocked()
	s.mu.Unlock()

	s.console.Success("Dropped %d junk items", removed)
	s.bus.Publish(EventJunkDropped, JunkDroppedPayload{Count: removed})
	s.publishRefresh()
	return removed
}

// HandleItemClick logs the click, notifies listeners, and pushes the item
// into the object inspector.
func (s *Store) HandleItemClick(itemID string) {
	item, ok := s.find(itemID)
	if !ok {
		s.console.Warning("Item not found: %s", itemID)
		return
	}

	s.console.Info("Clicked item: %s", item.Name)
	s.bus.Publish(EventItemClicked, ItemClickedPayload{Item: item, Action: "inspect"})
	s.bus.Publish(EventInspectorDisplay, InspectorPayload{
		Object:   inspectorObject(item),
		Category: "item",
	})

	switch item.Type {
	case ItemTypeWeapon:
		s.console.Info("%s - Damage: %s", item.Name, orUnknown(item.Damage))
	case ItemTypeConsumable:
		s.console.Info("%s - Effect: %s", item.Name, orUnknown(item.Effect))
	case ItemTypeKey:
		s.console.Info("%s - A special key item", item.Name)
	default:
		description := item.Description
		if description == "" {
			description = "No description available"
		}
		s.console.Info("%s - %s", item.Name, description)
	}
}

// Convenience wrappers: publish the inbound mutation events instead of
// touching the sequence directly, so external callers and in-page handlers
// share one code path.

func (s *Store) AddItem(item Item) {
	s.bus.Publish(EventInventoryAdd, AddItemPayload{Item: item})
}

func (s *Store) RemoveItem(itemID string) {
	s.bus.Publish(EventInventoryRemove, RemoveItemPayload{ItemID: itemID})
}

func (s *Store) UseItem(itemID string) {
	s.bus.Publish(EventPlayerItemUse, UseItemPayload{ItemID: itemID})
}

func (s *Store) EquipItem(itemID string) {
	s.bus.Publish(EventPlayerItemEquip, EquipItemPayload{ItemID: itemID})
}

func (s *Store) find(itemID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index := s.indexLocked(itemID); index >= 0 {
		return s.data.Items[index], true
	}
	return Item{}, false
}

func (s *Store) indexLocked(itemID string) int {
	for i, item := range s.data.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked() {
	s.storage.Set(inventoryStorageKey, s.data)
}

func (s *Store) publishRefresh() {
	s.bus.Publish(EventInventoryRefresh, nil)
}

func inspectorObject(item Item) InspectorObject {
	object := InspectorObject{
		Name:        item.Name,
		Type:        string(item.Type),
		Rarity:      string(item.Rarity),
		Description: item.Description,
		Damage:      item.Damage,
		Effect:      item.Effect,
		Actions:     ItemActions(item),
	}
	if object.Rarity == "" {
		object.Rarity = string(RarityCommon)
	}
	if object.Description == "" {
		object.Description = "No description available"
	}
	if item.Quantity > 1 {
		object.Quantity = item.Quantity
	}
	if item.Equipped {
		object.Status = "Equipped"
	}
	if item.QuestItem {
		object.Special = "Quest Item"
	}
	return object
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}
