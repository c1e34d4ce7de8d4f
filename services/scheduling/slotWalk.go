package scheduling

import (
	"time"

	"mediflow/models"
)

// walkWindow scans one open window [window.Start, window.End) and emits
// every fixed-duration candidate slot that fits.
//
// The cursor advances strictly on every iteration, so the walk always
// terminates:
//   - a candidate overlapping any blocked interval jumps the cursor past
//     the latest blocking end (or past the candidate itself, whichever is
//     later);
//   - a candidate starting at or before "now" is skipped when the walk is
//     for today;
//   - otherwise the candidate is emitted and the cursor steps to its end.
//
// Emitted slots have exactly the requested duration and come out in
// chronological order.
func walkWindow(window models.TimeInterval, duration time.Duration, blocked []models.TimeInterval, practitionerID string, now time.Time, today bool) []models.Slot {
	var slots []models.Slot

	cursor := window.Start
	for !cursor.Add(duration).After(window.End) {
		candidate := models.TimeInterval{Start: cursor, End: cursor.Add(duration)}

		var latestBlockEnd time.Time
		for _, b := range blocked {
			if b.Overlaps(candidate) && b.End.After(latestBlockEnd) {
				latestBlockEnd = b.End
			}
		}

		switch {
		case !latestBlockEnd.IsZero():
			if latestBlockEnd.After(candidate.End) {
				cursor = latestBlockEnd
			} else {
				cursor = candidate.End
			}
		case today && !candidate.Start.After(now):
			cursor = candidate.End
		default:
			slots = append(slots, models.Slot{
				Start:          candidate.Start,
				End:            candidate.End,
				PractitionerID: practitionerID,
			})
			cursor = candidate.End
		}
	}
	return slots
}
