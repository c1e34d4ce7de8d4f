package models

// Practitioner is a roster entry for a facility. Display fields are
// opaque pass-through for the booking UI; the engine only uses IDs.
type Practitioner struct {
	ID          string `bson:"id" json:"id"`
	FacilityID  string `bson:"facilityId" json:"facilityId"`
	DisplayName string `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Specialty   string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Active      bool   `bson:"active" json:"active"`
}
