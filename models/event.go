package models

import "time"

// HostType identifies which kind of schedule owner an availability event
// belongs to.
type HostType string

const (
	HostFacility     HostType = "facility"
	HostPractitioner HostType = "practitioner"
)

// EventStatus classifies an availability event.
type EventStatus string

const (
	StatusAvailable   EventStatus = "available"
	StatusUnavailable EventStatus = "unavailable"
	StatusHoliday     EventStatus = "holiday"
	StatusMeeting     EventStatus = "meeting"
	StatusLeave       EventStatus = "leave"
	StatusInterview   EventStatus = "interview"
)

// Recurrence describes when a recurring availability event occurs.
// Rule is an iCalendar RRULE string; ValidFrom/ValidTo bound the rule's
// applicability (inclusive day bounds). A zero ValidTo means open-ended.
type Recurrence struct {
	Rule      string    `bson:"rule" json:"rule"`
	ValidFrom time.Time `bson:"validFrom" json:"validFrom"`
	ValidTo   time.Time `bson:"validTo,omitempty" json:"validTo,omitempty"`
}

// AvailabilityEvent is a raw, read-only schedule record for a facility or
// practitioner. Times of day use HHMM integer encoding (930 = 09:30).
type AvailabilityEvent struct {
	ID             string      `bson:"id" json:"id"`
	HostID         string      `bson:"hostId" json:"hostId"`
	HostType       HostType    `bson:"hostType" json:"hostType"`
	Status         EventStatus `bson:"status" json:"status"`
	IsAvailable    bool        `bson:"isAvailable" json:"isAvailable"`
	StartTimeOfDay int         `bson:"startTimeOfDay" json:"startTimeOfDay"`
	EndTimeOfDay   int         `bson:"endTimeOfDay" json:"endTimeOfDay"`
	Recurrence     Recurrence  `bson:"recurrence" json:"recurrence"`
	IsActive       bool        `bson:"isActive" json:"isActive"`
}
