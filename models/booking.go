package models

import "time"

// BookingRecord is a raw, read-only appointment record for a facility.
// A booking blocks the practitioner it is linked to, either as host or as
// an attendee. Waitlisted bookings hold no time.
type BookingRecord struct {
	BookingID          string    `bson:"bookingId" json:"bookingId"`
	FacilityID         string    `bson:"facilityId" json:"facilityId"`
	HostPractitionerID string    `bson:"hostPractitionerId" json:"hostPractitionerId"`
	AttendeeIDs        []string  `bson:"attendeeIds,omitempty" json:"attendeeIds,omitempty"`
	Start              time.Time `bson:"start" json:"start"`
	End                time.Time `bson:"end" json:"end"`
	Waitlisted         bool      `bson:"waitlisted" json:"waitlisted"`
}

// InvolvesPractitioner reports whether the booking is linked to the given
// practitioner, as host or as an attendee.
func (b BookingRecord) InvolvesPractitioner(practitionerID string) bool {
	if b.HostPractitionerID == practitionerID {
		return true
	}
	for _, id := range b.AttendeeIDs {
		if id == practitionerID {
			return true
		}
	}
	return false
}
