package models

import "time"

// TimeInterval represents a half-open [Start, End) block of absolute time.
// OwnerID carries the practitioner or facility the interval belongs to,
// where that matters.
type TimeInterval struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	OwnerID string    `json:"ownerId,omitempty"`
}

// Valid reports whether the interval has positive length.
func (iv TimeInterval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Overlaps reports whether two half-open intervals share any time.
// Touching intervals (one ends exactly where the other starts) do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether other lies entirely within iv.
func (iv TimeInterval) Contains(other TimeInterval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}
