package eventsRepo

import (
	"context"

	"mediflow/models"
)

// EventRepository exposes the read-only availability-event feed. Records
// are raw schedule declarations; the scheduling engine interprets them.
type EventRepository interface {
	// GetAvailabilityEvents returns every availability event declared by
	// the given host (facility or practitioner), active or not.
	GetAvailabilityEvents(ctx context.Context, hostID string, hostType models.HostType) ([]models.AvailabilityEvent, error)
}
