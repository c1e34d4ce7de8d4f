package scheduling

import (
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"go.uber.org/zap"
)

// polarity selects which side of a host's schedule to extract from raw
// availability events.
type polarity int

const (
	// polarityPositive selects open, bookable time.
	polarityPositive polarity = iota
	// polarityNegative selects explicitly blocked time (holiday, meeting,
	// leave, ...), which overrides positive time where they overlap.
	polarityNegative
)

// blockingStatuses are the event statuses that mark a host unavailable.
var blockingStatuses = map[models.EventStatus]bool{
	models.StatusUnavailable: true,
	models.StatusHoliday:     true,
	models.StatusMeeting:     true,
	models.StatusLeave:       true,
	models.StatusInterview:   true,
}

// collectEventIntervals turns raw availability events into concrete
// intervals on the given date, for one polarity.
//
// An event contributes only when it is active, matches the requested
// polarity, and its recurrence descriptor occurs on the date. Records
// with out-of-range HHMM times or inverted ranges are dropped and logged;
// a malformed record must never manufacture bookable time.
func collectEventIntervals(events []models.AvailabilityEvent, date time.Time, p polarity) []models.TimeInterval {
	logger := utils.GetLogger()

	var intervals []models.TimeInterval
	for _, ev := range events {
		if !ev.IsActive {
			continue
		}
		if !matchesPolarity(ev, p) {
			continue
		}
		if !isOccurring(date, ev.Recurrence) {
			continue
		}

		start, err := timeOfDayOnDate(date, ev.StartTimeOfDay)
		if err != nil {
			logger.Warn("collectEventIntervals: dropping event with invalid start time",
				zap.String("eventId", ev.ID), zap.Int("startTimeOfDay", ev.StartTimeOfDay), zap.Error(err))
			continue
		}
		end, err := timeOfDayOnDate(date, ev.EndTimeOfDay)
		if err != nil {
			logger.Warn("collectEventIntervals: dropping event with invalid end time",
				zap.String("eventId", ev.ID), zap.Int("endTimeOfDay", ev.EndTimeOfDay), zap.Error(err))
			continue
		}
		if !start.Before(end) {
			logger.Warn("collectEventIntervals: dropping event with inverted time range",
				zap.String("eventId", ev.ID),
				zap.Int("startTimeOfDay", ev.StartTimeOfDay), zap.Int("endTimeOfDay", ev.EndTimeOfDay))
			continue
		}

		intervals = append(intervals, models.TimeInterval{Start: start, End: end, OwnerID: ev.HostID})
	}
	return intervals
}

func matchesPolarity(ev models.AvailabilityEvent, p polarity) bool {
	switch p {
	case polarityPositive:
		return ev.Status == models.StatusAvailable && ev.IsAvailable
	case polarityNegative:
		return blockingStatuses[ev.Status] || !ev.IsAvailable
	}
	return false
}

// timeOfDayOnDate combines an HHMM-encoded time of day (930 = 09:30) with
// a calendar date to produce an absolute instant in the date's location.
func timeOfDayOnDate(date time.Time, hhmm int) (time.Time, error) {
	hour := hhmm / 100
	minute := hhmm % 100
	if hhmm < 0 || hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("time of day %d out of range", hhmm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
