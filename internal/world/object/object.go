// Package object defines the world objects that live on a tile map: trees
// that block movement and can be chopped, wood logs they drop, the dust
// clouds left behind when one falls, and item pickups placed by the map.
package object

import "github.com/google/uuid"

// Kind identifies the type of a world object
type Kind string

const (
	KindTree      Kind = "tree"
	KindWoodLog   Kind = "wood_log"
	KindDustCloud Kind = "dust_cloud"
	KindPickup    Kind = "pickup"
)

// Default object sizes in world units
const (
	TreeWidth     = 16.0
	TreeHeight    = 16.0
	WoodLogSize   = 10.0
	DustCloudSize = 24.0
	PickupSize    = 8.0
)

func newID() string {
	return uuid.NewString()
}
