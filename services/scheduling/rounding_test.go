package scheduling

import (
	"testing"
	"time"

	"mediflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeilToQuarterHour(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"already aligned", at(9, 0), at(9, 0)},
		{"aligned at 45", at(9, 45), at(9, 45)},
		{"rounds up", at(9, 7), at(9, 15)},
		{"one minute past", at(9, 16), at(9, 30)},
		{"just before boundary", at(9, 14), at(9, 15)},
		{"crosses the hour", at(9, 50), at(10, 0)},
		{"seconds push an aligned minute up", at(9, 0).Add(30 * time.Second), at(9, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ceilToQuarterHour(tt.in))
		})
	}
}

func TestRoundAndDedupSlots(t *testing.T) {
	slots := []models.Slot{
		{Start: at(9, 5), End: at(9, 50), PractitionerID: "p1"},
		{Start: at(9, 15), End: at(10, 0), PractitionerID: "p1"}, // duplicate after rounding
		{Start: at(9, 15), End: at(10, 0), PractitionerID: "p2"}, // same times, other practitioner
	}

	got := roundAndDedupSlots(slots)

	require.Len(t, got, 2)
	assert.Equal(t, at(9, 15), got[0].Start)
	assert.Equal(t, at(10, 0), got[0].End)
	assert.Equal(t, "p1", got[0].PractitionerID)
	assert.Equal(t, "p2", got[1].PractitionerID)
}

func TestRoundAndDedupSlotsDropsInverted(t *testing.T) {
	// Rounding both bounds up can collapse a sliver to nothing.
	slots := []models.Slot{
		{Start: at(9, 1), End: at(9, 10), PractitionerID: "p1"},
	}

	assert.Empty(t, roundAndDedupSlots(slots))
}

func TestRoundAndDedupSlotsBoundariesOnQuarterMarks(t *testing.T) {
	slots := []models.Slot{
		{Start: at(9, 3), End: at(9, 48), PractitionerID: "p1"},
		{Start: at(11, 59), End: at(12, 44), PractitionerID: "p1"},
	}

	for _, s := range roundAndDedupSlots(slots) {
		assert.Zero(t, (s.Start.Hour()*60+s.Start.Minute())%15)
		assert.Zero(t, (s.End.Hour()*60+s.End.Minute())%15)
	}
}
