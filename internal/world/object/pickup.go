package object

import "chosenoffset.com/ark/internal/core/geom"

// Pickup is an item placed by the map author, such as food or a scripture
// fragment. Walking over it moves it into the inventory.
type Pickup struct {
	ID       string
	Item     string // inventory item name
	Position geom.Point
}

// NewPickup creates a pickup of item centered on p
func NewPickup(item string, p geom.Point) *Pickup {
	return &Pickup{ID: newID(), Item: item, Position: p}
}

// Bounds returns the pickup area
func (p *Pickup) Bounds() geom.Box {
	return geom.BoxAt(p.Position, PickupSize, PickupSize)
}

// Kind returns KindPickup
func (p *Pickup) Kind() Kind { return KindPickup }
