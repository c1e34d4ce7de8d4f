package scheduling

import (
	"testing"
	"time"

	"mediflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkWindowEmitsExactDurationSlots(t *testing.T) {
	slots := walkWindow(iv(9, 0, 11, 0), 45*time.Minute, nil, "p1", time.Time{}, false)

	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 45), slots[0].End)
	assert.Equal(t, at(9, 45), slots[1].Start)
	assert.Equal(t, at(10, 30), slots[1].End)
	// 10:30 + 45m would overrun 11:00, so the walk stops there.
	for _, s := range slots {
		assert.Equal(t, 45*time.Minute, s.End.Sub(s.Start))
		assert.Equal(t, "p1", s.PractitionerID)
	}
}

func TestWalkWindowSlotFlushWithWindowEnd(t *testing.T) {
	slots := walkWindow(iv(9, 0, 10, 0), 60*time.Minute, nil, "p1", time.Time{}, false)
	require.Len(t, slots, 1)
	assert.Equal(t, at(10, 0), slots[0].End)
}

func TestWalkWindowJumpsPastBlocks(t *testing.T) {
	blocked := []models.TimeInterval{iv(9, 30, 10, 10)}

	slots := walkWindow(iv(9, 0, 12, 0), 60*time.Minute, blocked, "p1", time.Time{}, false)

	// 09:00 candidate overlaps the block; cursor jumps to max(10:10, 10:00)
	// = 10:10, then 10:10-11:10 is clear.
	require.Len(t, slots, 1)
	assert.Equal(t, at(10, 10), slots[0].Start)
	assert.Equal(t, at(11, 10), slots[0].End)
}

func TestWalkWindowBlockEndBeforeCandidateEndStillAdvances(t *testing.T) {
	// A short block early in the candidate: blocking end (9:10) is before
	// the candidate end (10:00), so the cursor moves to the candidate end.
	blocked := []models.TimeInterval{iv(9, 0, 9, 10)}

	slots := walkWindow(iv(9, 0, 11, 0), 60*time.Minute, blocked, "p1", time.Time{}, false)

	require.Len(t, slots, 1)
	assert.Equal(t, at(10, 0), slots[0].Start)
}

func TestWalkWindowTouchingBlockDoesNotBlock(t *testing.T) {
	// Block ends exactly where the candidate starts; half-open semantics
	// mean no overlap.
	blocked := []models.TimeInterval{iv(8, 0, 9, 0)}

	slots := walkWindow(iv(9, 0, 10, 0), 60*time.Minute, blocked, "p1", time.Time{}, false)
	require.Len(t, slots, 1)
}

func TestWalkWindowSkipsPastCandidatesToday(t *testing.T) {
	now := at(14, 32)

	slots := walkWindow(iv(9, 0, 18, 0), 60*time.Minute, nil, "p1", now, true)

	require.NotEmpty(t, slots)
	// Any slot starting at or before 14:32 is excluded.
	assert.Equal(t, at(15, 0), slots[0].Start)
	for _, s := range slots {
		assert.True(t, s.Start.After(now))
	}
}

func TestWalkWindowIgnoresNowWhenNotToday(t *testing.T) {
	now := at(14, 32)

	slots := walkWindow(iv(9, 0, 11, 0), 60*time.Minute, nil, "p1", now, false)
	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 0), slots[0].Start)
}

func TestWalkWindowFullyBlockedEmitsNothing(t *testing.T) {
	blocked := []models.TimeInterval{iv(8, 0, 12, 0)}

	slots := walkWindow(iv(9, 0, 11, 0), 30*time.Minute, blocked, "p1", time.Time{}, false)
	assert.Empty(t, slots)
}

func TestWalkWindowChronologicalAndNonOverlapping(t *testing.T) {
	blocked := []models.TimeInterval{iv(10, 0, 10, 20), iv(12, 0, 12, 5)}

	slots := walkWindow(iv(9, 0, 14, 0), 30*time.Minute, blocked, "p1", time.Time{}, false)

	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].Start.Before(slots[i-1].End), "slots must not overlap")
	}
	for _, s := range slots {
		for _, b := range blocked {
			assert.False(t, (models.TimeInterval{Start: s.Start, End: s.End}).Overlaps(b),
				"slot %v overlaps block %v", s, b)
		}
	}
}
