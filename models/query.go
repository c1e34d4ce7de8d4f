package models

import "time"

// BookingMode selects the slot generation strategy.
type BookingMode string

const (
	// ModeNewUser matches a new patient against every candidate
	// practitioner independently.
	ModeNewUser BookingMode = "new_user"
	// ModeReturningUser targets one specific practitioner, or the "any
	// practitioner" placeholder when none is given.
	ModeReturningUser BookingMode = "returning_user"
)

// AnyPractitioner is the placeholder identifier used in returning-user
// mode when no specific practitioner is targeted.
const AnyPractitioner = "any"

// SlotQuery parameterizes one availability computation. It is created
// fresh per request and never mutated.
type SlotQuery struct {
	FacilityID               string      `json:"facilityId"`
	Date                     time.Time   `json:"date"` // local midnight of the business day
	DurationMinutes          int         `json:"durationMinutes"`
	Mode                     BookingMode `json:"mode"`
	TargetPractitionerID     string      `json:"targetPractitionerId,omitempty"`
	CandidatePractitionerIDs []string    `json:"candidatePractitionerIds,omitempty"`
}

// Slot is one bookable candidate: exact requested duration, boundaries on
// 15-minute marks, tied to a single practitioner.
type Slot struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	PractitionerID string    `json:"practitionerId"`
}
