package scheduling

import (
	"context"
	"sync"
	"time"

	eventsRepo "mediflow/database/repository/events"
	"mediflow/models"
	"mediflow/utils"

	"go.uber.org/zap"
)

// practitionerWindows is the per-practitioner material the generator
// consumes: declared open and blocked time for the query date.
type practitionerWindows struct {
	ID       string
	Positive []models.TimeInterval
	Negative []models.TimeInterval
	// SkipWithoutPositive drops the practitioner entirely when they have
	// no declared open time, instead of treating silence as availability.
	SkipWithoutPositive bool
}

// slotStrategy collects the practitioners a booking mode considers, with
// their schedule windows. The two modes share everything downstream of
// this point (intersection, subtraction, window walk).
type slotStrategy interface {
	Collect(ctx context.Context, query models.SlotQuery, date time.Time, candidateIDs []string) ([]practitionerWindows, error)
}

// newUserStrategy evaluates every candidate practitioner independently.
// Candidates without any declared positive availability are skipped; a
// new patient must never be offered a practitioner who did not open their
// schedule for the day.
type newUserStrategy struct {
	Events eventsRepo.EventRepository
}

func (s *newUserStrategy) Collect(ctx context.Context, query models.SlotQuery, date time.Time, candidateIDs []string) ([]practitionerWindows, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}

	results := make([]practitionerWindows, len(candidateIDs))
	errCh := make(chan error, len(candidateIDs))
	var wg sync.WaitGroup

	for i, id := range candidateIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			events, err := s.Events.GetAvailabilityEvents(ctx, id, models.HostPractitioner)
			if err != nil {
				errCh <- NewFetchError("practitioner availability", err)
				return
			}
			results[i] = practitionerWindows{
				ID:                  id,
				Positive:            collectEventIntervals(events, date, polarityPositive),
				Negative:            collectEventIntervals(events, date, polarityNegative),
				SkipWithoutPositive: true,
			}
		}(i, id)
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	return results, nil
}

// returningUserStrategy targets one practitioner. With no target set, the
// "any practitioner" placeholder is assumed available for the full
// calendar day. That assumption is deliberately asymmetric with new-user
// mode (which skips practitioners without declared availability); it is
// preserved as-is pending product clarification.
type returningUserStrategy struct {
	Events eventsRepo.EventRepository
}

func (s *returningUserStrategy) Collect(ctx context.Context, query models.SlotQuery, date time.Time, _ []string) ([]practitionerWindows, error) {
	if query.TargetPractitionerID == "" {
		utils.GetLogger().Debug("returningUserStrategy: no target practitioner, assuming full-day availability",
			zap.String("facilityId", query.FacilityID))
		return []practitionerWindows{{
			ID: models.AnyPractitioner,
			Positive: []models.TimeInterval{{
				Start:   date,
				End:     date.AddDate(0, 0, 1),
				OwnerID: models.AnyPractitioner,
			}},
		}}, nil
	}

	events, err := s.Events.GetAvailabilityEvents(ctx, query.TargetPractitionerID, models.HostPractitioner)
	if err != nil {
		return nil, NewFetchError("practitioner availability", err)
	}
	return []practitionerWindows{{
		ID:       query.TargetPractitionerID,
		Positive: collectEventIntervals(events, date, polarityPositive),
		Negative: collectEventIntervals(events, date, polarityNegative),
	}}, nil
}
