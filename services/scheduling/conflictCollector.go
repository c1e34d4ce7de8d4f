package scheduling

import (
	"mediflow/models"
	"mediflow/utils"

	"go.uber.org/zap"
)

// collectConflicts turns raw appointment records into per-practitioner
// blocked intervals. A booking blocks every practitioner it is linked to,
// whether as host or as an attendee. Waitlisted bookings hold no time and
// are ignored, as are records with inverted or missing time ranges.
func collectConflicts(bookings []models.BookingRecord) map[string][]models.TimeInterval {
	logger := utils.GetLogger()

	conflicts := make(map[string][]models.TimeInterval)
	for _, b := range bookings {
		if b.Waitlisted {
			continue
		}
		iv := models.TimeInterval{Start: b.Start, End: b.End}
		if !iv.Valid() {
			logger.Warn("collectConflicts: dropping booking with invalid time range",
				zap.String("bookingId", b.BookingID),
				zap.Time("start", b.Start), zap.Time("end", b.End))
			continue
		}

		seen := map[string]bool{}
		for _, id := range append([]string{b.HostPractitionerID}, b.AttendeeIDs...) {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			blocked := iv
			blocked.OwnerID = id
			conflicts[id] = append(conflicts[id], blocked)
		}
	}
	return conflicts
}
