package scheduling

import (
	"testing"
	"time"

	"mediflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dailyEvent builds an active availability event recurring every day,
// valid around the test date.
func dailyEvent(hostID string, status models.EventStatus, available bool, startHHMM, endHHMM int) models.AvailabilityEvent {
	return models.AvailabilityEvent{
		ID:             "ev-" + hostID,
		HostID:         hostID,
		HostType:       models.HostPractitioner,
		Status:         status,
		IsAvailable:    available,
		StartTimeOfDay: startHHMM,
		EndTimeOfDay:   endHHMM,
		Recurrence: models.Recurrence{
			Rule:      "FREQ=DAILY",
			ValidFrom: algebraDay.AddDate(0, 0, -30),
		},
		IsActive: true,
	}
}

func TestCollectEventIntervalsPositivePolarity(t *testing.T) {
	events := []models.AvailabilityEvent{
		dailyEvent("p1", models.StatusAvailable, true, 900, 1300),
		dailyEvent("p1", models.StatusHoliday, false, 1400, 1500),     // negative, filtered
		dailyEvent("p1", models.StatusAvailable, false, 1500, 1600),   // flag off, filtered
	}

	got := collectEventIntervals(events, algebraDay, polarityPositive)

	require.Len(t, got, 1)
	assert.Equal(t, at(9, 0), got[0].Start)
	assert.Equal(t, at(13, 0), got[0].End)
	assert.Equal(t, "p1", got[0].OwnerID)
}

func TestCollectEventIntervalsNegativePolarity(t *testing.T) {
	events := []models.AvailabilityEvent{
		dailyEvent("p1", models.StatusAvailable, true, 900, 1300),
		dailyEvent("p1", models.StatusMeeting, false, 1000, 1100),
		dailyEvent("p1", models.StatusLeave, false, 1100, 1200),
		// Available status but flag off still counts as blocked time.
		dailyEvent("p1", models.StatusAvailable, false, 1500, 1600),
	}

	got := collectEventIntervals(events, algebraDay, polarityNegative)

	require.Len(t, got, 3)
	assert.Equal(t, at(10, 0), got[0].Start)
	assert.Equal(t, at(11, 0), got[1].Start)
	assert.Equal(t, at(15, 0), got[2].Start)
}

func TestCollectEventIntervalsInactiveDropped(t *testing.T) {
	ev := dailyEvent("p1", models.StatusAvailable, true, 900, 1300)
	ev.IsActive = false

	got := collectEventIntervals([]models.AvailabilityEvent{ev}, algebraDay, polarityPositive)
	assert.Empty(t, got)
}

func TestCollectEventIntervalsRecurrenceGate(t *testing.T) {
	ev := dailyEvent("p1", models.StatusAvailable, true, 900, 1300)
	ev.Recurrence = models.Recurrence{
		Rule:      "FREQ=WEEKLY;BYDAY=MO",
		ValidFrom: day(2024, time.January, 1),
		ValidTo:   day(2024, time.January, 31),
	}

	// algebraDay (2026-03-10) is far outside the validity window.
	got := collectEventIntervals([]models.AvailabilityEvent{ev}, algebraDay, polarityPositive)
	assert.Empty(t, got)
}

func TestCollectEventIntervalsBadTimesDropped(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
	}{
		{"hour out of range", 2500, 2600},
		{"minute out of range", 975, 1000},
		{"negative", -100, 1000},
		{"inverted range", 1300, 900},
		{"zero length", 900, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := dailyEvent("p1", models.StatusAvailable, true, tt.start, tt.end)
			got := collectEventIntervals([]models.AvailabilityEvent{ev}, algebraDay, polarityPositive)
			assert.Empty(t, got)
		})
	}
}

func TestTimeOfDayOnDate(t *testing.T) {
	got, err := timeOfDayOnDate(algebraDay, 930)
	require.NoError(t, err)
	assert.Equal(t, at(9, 30), got)

	got, err = timeOfDayOnDate(algebraDay, 0)
	require.NoError(t, err)
	assert.Equal(t, at(0, 0), got)

	_, err = timeOfDayOnDate(algebraDay, 2400)
	assert.Error(t, err)
}
