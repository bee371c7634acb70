package object

import "chosenoffset.com/ark/internal/core/geom"

// WoodLog is dropped by a felled tree and can be picked up
type WoodLog struct {
	ID       string
	Position geom.Point
}

// NewWoodLog creates a log centered on p
func NewWoodLog(p geom.Point) *WoodLog {
	return &WoodLog{ID: newID(), Position: p}
}

// Bounds returns the pickup area
func (l *WoodLog) Bounds() geom.Box {
	return geom.BoxAt(l.Position, WoodLogSize, WoodLogSize)
}

// Kind returns KindWoodLog
func (l *WoodLog) Kind() Kind { return KindWoodLog }

// DustCloud is a purely visual effect with a fixed lifetime. It takes no
// part in collision.
type DustCloud struct {
	ID       string
	Position geom.Point
	lifetime float64
	age      float64
}

// NewDustCloud creates a cloud at p that lasts lifetime seconds
func NewDustCloud(p geom.Point, lifetime float64) *DustCloud {
	return &DustCloud{ID: newID(), Position: p, lifetime: lifetime}
}

// Update ages the cloud
func (d *DustCloud) Update(dt float64) {
	d.age += dt
}

// Expired reports whether the cloud has outlived its lifetime
func (d *DustCloud) Expired() bool {
	return d.age >= d.lifetime
}

// Progress returns how far through its lifetime the cloud is, in [0, 1]
func (d *DustCloud) Progress() float64 {
	if d.lifetime <= 0 {
		return 1
	}
	p := d.age / d.lifetime
	if p > 1 {
		return 1
	}
	return p
}

// Bounds returns the drawn area
func (d *DustCloud) Bounds() geom.Box {
	return geom.BoxAt(d.Position, DustCloudSize, DustCloudSize)
}

// Kind returns KindDustCloud
func (d *DustCloud) Kind() Kind { return KindDustCloud }
