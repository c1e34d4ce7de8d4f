package scheduling

import (
	"fmt"
	"time"

	"mediflow/models"
)

const slotGranularity = 15 // minutes

// roundAndDedupSlots snaps every slot boundary up to the next 15-minute
// mark (a boundary already on a mark is untouched), drops slots the
// rounding inverted, and removes exact duplicates on
// (start, end, practitioner). Input order is preserved.
func roundAndDedupSlots(slots []models.Slot) []models.Slot {
	seen := make(map[string]bool, len(slots))
	var out []models.Slot

	for _, s := range slots {
		s.Start = ceilToQuarterHour(s.Start)
		s.End = ceilToQuarterHour(s.End)
		if !s.Start.Before(s.End) {
			continue
		}

		key := fmt.Sprintf("%d|%d|%s", s.Start.Unix(), s.End.Unix(), s.PractitionerID)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// ceilToQuarterHour rounds t up to the next multiple of 15 minutes of the
// local day. Computed from wall-clock minutes so it stays correct in
// zones whose UTC offset is not a multiple of 15 minutes.
func ceilToQuarterHour(t time.Time) time.Time {
	minuteOfDay := t.Hour()*60 + t.Minute()
	remainder := minuteOfDay % slotGranularity

	if remainder == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}

	advance := slotGranularity - remainder
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	return base.Add(time.Duration(advance) * time.Minute)
}
