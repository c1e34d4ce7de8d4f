package bookingsRepo

import (
	"context"
	"time"

	"mediflow/models"
)

// BookingRepository exposes the read-only appointment feed for a facility.
type BookingRepository interface {
	// GetFacilityBookings returns every appointment at the facility whose
	// time range overlaps [from, to).
	GetFacilityBookings(ctx context.Context, facilityID string, from, to time.Time) ([]models.BookingRecord, error)
}
