package scheduling

import (
	"sort"

	"mediflow/models"
)

// Interval algebra over half-open [Start, End) blocks. These operations
// are pure: inputs are never mutated, outputs are freshly allocated, and
// zero- or negative-length intervals are dropped on sight.

// mergeIntervals unions a set of intervals into a sorted, non-overlapping
// set. Touching intervals merge into one.
func mergeIntervals(intervals []models.TimeInterval) []models.TimeInterval {
	var valid []models.TimeInterval
	for _, iv := range intervals {
		if iv.Valid() {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Start.Before(valid[j].Start)
	})

	merged := []models.TimeInterval{valid[0]}
	for _, iv := range valid[1:] {
		current := &merged[len(merged)-1]
		if !iv.Start.After(current.End) {
			if iv.End.After(current.End) {
				current.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// subtractIntervals removes every subtrahend from the base set, folding
// one subtrahend at a time over the current residual.
func subtractIntervals(base, subtrahends []models.TimeInterval) []models.TimeInterval {
	var residual []models.TimeInterval
	for _, iv := range base {
		if iv.Valid() {
			residual = append(residual, iv)
		}
	}

	for _, sub := range subtrahends {
		if !sub.Valid() {
			continue
		}
		var updated []models.TimeInterval
		for _, iv := range residual {
			if !iv.Overlaps(sub) {
				updated = append(updated, iv)
				continue
			}
			// Left remainder: [iv.Start, sub.Start)
			if sub.Start.After(iv.Start) {
				updated = append(updated, models.TimeInterval{Start: iv.Start, End: sub.Start, OwnerID: iv.OwnerID})
			}
			// Right remainder: [sub.End, iv.End)
			if sub.End.Before(iv.End) {
				updated = append(updated, models.TimeInterval{Start: sub.End, End: iv.End, OwnerID: iv.OwnerID})
			}
		}
		residual = updated
	}
	return residual
}

// intersectIntervals intersects two interval sets pairwise across the
// cross-product: max of starts, min of ends, kept only when still a
// positive-length interval. The owner of the second operand wins, so that
// facility ∩ practitioner windows stay attributed to the practitioner.
func intersectIntervals(a, b []models.TimeInterval) []models.TimeInterval {
	var out []models.TimeInterval
	for _, ivA := range a {
		for _, ivB := range b {
			start := ivA.Start
			if ivB.Start.After(start) {
				start = ivB.Start
			}
			end := ivA.End
			if ivB.End.Before(end) {
				end = ivB.End
			}
			if start.Before(end) {
				out = append(out, models.TimeInterval{Start: start, End: end, OwnerID: ivB.OwnerID})
			}
		}
	}
	return mergeIntervals(out)
}
