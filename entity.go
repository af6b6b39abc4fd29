package otter

import "fmt"

// Entity is a handle to one allocated slot in an Index. It combines a
// 32-bit slot number with a 32-bit version so that a recycled slot is
// never confused with its previous occupant.
type Entity struct {
	// ID is the slot number. 0 is reserved as the invalid sentinel and is
	// never returned by allocation.
	ID uint32
	// Version is a generation counter, incremented each time the slot is
	// recycled. Stale versions fail validation on every lookup.
	Version uint32
}

// bumped returns the identifier that replaces e once its slot is recycled.
// The version wraps on overflow rather than exhausting the slot.
func (e Entity) bumped() Entity {
	return Entity{ID: e.ID, Version: e.Version + 1}
}

// IsZero reports whether e occupies the reserved slot 0 and therefore can
// never be alive.
func (e Entity) IsZero() bool {
	return e.ID == 0
}

// String implements fmt.Stringer.
func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.ID, e.Version)
}

// Record maps one slot to its current position in an Index's dense array.
type Record struct {
	// DensePos is the slot's index in the dense array, or 0 when the slot
	// is not currently tracked. Live positions start at 1; position 0 is
	// permanently held by the invalid placeholder entity.
	DensePos uint32
}
