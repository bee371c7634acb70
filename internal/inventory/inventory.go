// Package inventory counts what the player has gathered for the ark: wood,
// animals, food and scripture fragments. Items are stored by name with
// quantities and optional stack limits.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Well-known item names
const (
	Wood      = "wood"
	Animal    = "animal"
	Food      = "food"
	Scripture = "scripture"
)

// Item describes one kind of collectible
type Item struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	MaxStack    int    `json:"max_stack,omitempty"` // 0 = unlimited
}

// InventorySlot represents an item and its quantity
type InventorySlot struct {
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
}

// Inventory holds all items for a player
type Inventory struct {
	mu sync.RWMutex

	// Slots maps item name to quantity
	Slots map[string]int

	// ItemDefinitions provides stack limits and display names (optional)
	ItemDefinitions map[string]*Item

	// OnChange callback when inventory changes (for HUD updates)
	OnChange func()
}

// New creates a new empty inventory
func New() *Inventory {
	return &Inventory{
		Slots:           make(map[string]int),
		ItemDefinitions: make(map[string]*Item),
	}
}

// RegisterItem adds an item definition to the inventory
func (inv *Inventory) RegisterItem(item *Item) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.ItemDefinitions[item.Name] = item
}

// DisplayName returns the registered display name of an item, or its name
func (inv *Inventory) DisplayName(itemName string) string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if def, ok := inv.ItemDefinitions[itemName]; ok && def.DisplayName != "" {
		return def.DisplayName
	}
	return itemName
}

// GetItemCount returns the quantity of an item (0 if not present)
func (inv *Inventory) GetItemCount(itemName string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.Slots[itemName]
}

// AddItem adds items to the inventory, returns actual amount added
func (inv *Inventory) AddItem(itemName string, count int) int {
	if count <= 0 {
		return 0
	}

	inv.mu.Lock()
	if def, ok := inv.ItemDefinitions[itemName]; ok && def.MaxStack > 0 {
		room := def.MaxStack - inv.Slots[itemName]
		if count > room {
			count = room
		}
	}
	if count > 0 {
		inv.Slots[itemName] += count
	}
	inv.mu.Unlock()

	if count > 0 {
		inv.notifyChange()
		return count
	}
	return 0
}

// RemoveItem removes items from the inventory, returns true if successful
func (inv *Inventory) RemoveItem(itemName string, count int) bool {
	if count <= 0 {
		return true
	}

	inv.mu.Lock()
	current := inv.Slots[itemName]
	if current < count {
		inv.mu.Unlock()
		return false // Not enough items
	}
	inv.Slots[itemName] -= count
	if inv.Slots[itemName] <= 0 {
		delete(inv.Slots, itemName)
	}
	inv.mu.Unlock()

	inv.notifyChange()
	return true
}

// GetAllItems returns a slice of all items and their quantities
func (inv *Inventory) GetAllItems() []InventorySlot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	result := make([]InventorySlot, 0, len(inv.Slots))
	for name, count := range inv.Slots {
		result = append(result, InventorySlot{ItemName: name, Count: count})
	}

	// Sort by name for consistent ordering
	sort.Slice(result, func(i, j int) bool {
		return result[i].ItemName < result[j].ItemName
	})

	return result
}

// TotalItems returns the total count of all items
func (inv *Inventory) TotalItems() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0
	for _, count := range inv.Slots {
		total += count
	}
	return total
}

// Summary returns a one-line description for the HUD, e.g. "animal 2  wood 5"
func (inv *Inventory) Summary() string {
	items := inv.GetAllItems()
	if len(items) == 0 {
		return "empty"
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s %d", inv.DisplayName(it.ItemName), it.Count))
	}
	return strings.Join(parts, "  ")
}

// notifyChange calls the OnChange callback if set. It runs without the
// lock held so the callback may read the inventory.
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// --- Item Library ---

// ItemLibrary holds item definitions that can be shared across inventories
type ItemLibrary struct {
	Name  string           `json:"name"`
	Items map[string]*Item `json:"items"`
}

// LoadItemLibrary loads item definitions from a JSON file
func LoadItemLibrary(filepath string) (*ItemLibrary, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read item library: %w", err)
	}

	var library ItemLibrary
	if err := json.Unmarshal(data, &library); err != nil {
		return nil, fmt.Errorf("failed to parse item library: %w", err)
	}

	if library.Items == nil {
		library.Items = make(map[string]*Item)
	}

	return &library, nil
}

// ApplyToInventory registers all items from the library to an inventory
func (lib *ItemLibrary) ApplyToInventory(inv *Inventory) {
	for name, item := range lib.Items {
		item.Name = name // Ensure name is set
		inv.RegisterItem(item)
	}
}
