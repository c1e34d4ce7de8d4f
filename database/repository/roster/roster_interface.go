package rosterRepo

import (
	"context"

	"mediflow/models"
)

// RosterRepository exposes the practitioner roster of a facility.
type RosterRepository interface {
	// GetPractitioners returns the facility's practitioners. With
	// activeOnly set, practitioners marked inactive are filtered out.
	GetPractitioners(ctx context.Context, facilityID string, activeOnly bool) ([]models.Practitioner, error)
}
