package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	bookingsRepo "mediflow/database/repository/bookings"
	eventsRepo "mediflow/database/repository/events"
	rosterRepo "mediflow/database/repository/roster"
	"mediflow/models"
	"mediflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingEngine computes bookable appointment slots.
type SchedulingEngine interface {
	// ComputeAvailableSlots returns the bookable fixed-duration slots for
	// the query's facility and date, per practitioner.
	ComputeAvailableSlots(ctx context.Context, query models.SlotQuery) ([]models.Slot, error)
}

// DefaultSchedulingEngine is the production implementation. Cache and
// Tracker are optional; a nil Cache recomputes every query and a nil
// Tracker disables supersession checks.
type DefaultSchedulingEngine struct {
	Events   eventsRepo.EventRepository
	Bookings bookingsRepo.BookingRepository
	Roster   rosterRepo.RosterRepository
	Cache    *SlotCache
	Tracker  *QueryTracker

	// Business window bounds in local hours; [7, 20) when left zero.
	OpenHour  int
	CloseHour int

	// Now is the clock used to exclude already-past slots on today's
	// date. Defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// ComputeAvailableSlots runs the full pipeline: cache lookup, concurrent
// upstream reads, per-practitioner slot generation, rounding and
// deduplication, supersession check, cache write.
func (se *DefaultSchedulingEngine) ComputeAvailableSlots(ctx context.Context, query models.SlotQuery) ([]models.Slot, error) {
	logger := utils.GetLogger()
	computationID := uuid.NewString()

	if err := validateQuery(query); err != nil {
		return nil, err
	}

	key := KeyForQuery(query)
	if se.Tracker != nil {
		se.Tracker.Begin(query.FacilityID, key)
	}

	if se.Cache != nil {
		if slots, ok := se.Cache.Get(ctx, key); ok {
			logger.Debug("ComputeAvailableSlots: cache hit",
				zap.String("computationId", computationID), zap.String("key", key.String()))
			return slots, nil
		}
	}

	date := startOfDay(query.Date)
	dayEnd := date.AddDate(0, 0, 1)

	// The upstream reads have no data dependency on each other; issue
	// them concurrently and join before processing.
	var (
		facilityEvents []models.AvailabilityEvent
		bookings       []models.BookingRecord
		candidateIDs   = query.CandidatePractitionerIDs
	)
	needRoster := query.Mode == models.ModeNewUser && len(candidateIDs) == 0

	errCh := make(chan error, 3)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		events, err := se.Events.GetAvailabilityEvents(ctx, query.FacilityID, models.HostFacility)
		if err != nil {
			errCh <- NewFetchError("facility availability", err)
			return
		}
		facilityEvents = events
	}()
	go func() {
		defer wg.Done()
		records, err := se.Bookings.GetFacilityBookings(ctx, query.FacilityID, date, dayEnd)
		if err != nil {
			errCh <- NewFetchError("facility bookings", err)
			return
		}
		bookings = records
	}()
	if needRoster {
		wg.Add(1)
		go func() {
			defer wg.Done()
			practitioners, err := se.Roster.GetPractitioners(ctx, query.FacilityID, true)
			if err != nil {
				errCh <- NewFetchError("practitioner roster", err)
				return
			}
			ids := make([]string, 0, len(practitioners))
			for _, p := range practitioners {
				ids = append(ids, p.ID)
			}
			candidateIDs = ids
		}()
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	if err := checkDataContract(facilityEvents, bookings); err != nil {
		return nil, err
	}

	facilityPositive := collectEventIntervals(facilityEvents, date, polarityPositive)
	facilityNegative := collectEventIntervals(facilityEvents, date, polarityNegative)
	conflicts := collectConflicts(bookings)

	logger.Debug("ComputeAvailableSlots: processed facility schedule",
		zap.String("computationId", computationID),
		zap.String("facilityId", query.FacilityID),
		zap.Int("positiveWindows", len(facilityPositive)),
		zap.Int("negativeWindows", len(facilityNegative)),
		zap.Int("bookings", len(bookings)))

	windows, err := se.strategyFor(query.Mode).Collect(ctx, query, date, candidateIDs)
	if err != nil {
		return nil, err
	}

	now := se.now()
	today := now.Year() == date.Year() && now.YearDay() == date.YearDay()

	// Pure CPU work from here on; practitioners share no mutable state,
	// so each one's walk runs in parallel.
	perPractitioner := make([][]models.Slot, len(windows))
	var genWG sync.WaitGroup
	for i, pw := range windows {
		genWG.Add(1)
		go func(i int, pw practitionerWindows) {
			defer genWG.Done()
			perPractitioner[i] = se.generateForPractitioner(pw, facilityPositive, facilityNegative, conflicts[pw.ID], query, date, now, today)
		}(i, pw)
	}
	genWG.Wait()

	var all []models.Slot
	for _, slots := range perPractitioner {
		all = append(all, slots...)
	}
	result := roundAndDedupSlots(all)
	if result == nil {
		result = []models.Slot{}
	}

	if se.Tracker != nil && !se.Tracker.IsCurrent(query.FacilityID, key) {
		logger.Debug("ComputeAvailableSlots: result superseded, discarding",
			zap.String("computationId", computationID), zap.String("key", key.String()))
		return nil, ErrSuperseded
	}

	if se.Cache != nil {
		se.Cache.Put(ctx, key, result)
	}

	logger.Debug("ComputeAvailableSlots: done",
		zap.String("computationId", computationID),
		zap.String("key", key.String()),
		zap.Int("slots", len(result)))
	return result, nil
}

// generateForPractitioner runs steps shared by both booking modes for one
// practitioner: intersect facility, practitioner and business windows,
// subtract everything blocked, walk the residual windows.
func (se *DefaultSchedulingEngine) generateForPractitioner(
	pw practitionerWindows,
	facilityPositive, facilityNegative []models.TimeInterval,
	practitionerBookings []models.TimeInterval,
	query models.SlotQuery,
	date time.Time,
	now time.Time,
	today bool,
) []models.Slot {
	if len(pw.Positive) == 0 && pw.SkipWithoutPositive {
		utils.GetLogger().Debug("generateForPractitioner: no declared availability, skipping",
			zap.String("practitionerId", pw.ID), zap.String("date", date.Format("2006-01-02")))
		return nil
	}

	windows := intersectIntervals(facilityPositive, pw.Positive)
	windows = intersectIntervals(windows, []models.TimeInterval{se.businessWindow(date)})

	var blocked []models.TimeInterval
	blocked = append(blocked, facilityNegative...)
	blocked = append(blocked, pw.Negative...)
	blocked = append(blocked, practitionerBookings...)
	blocked = mergeIntervals(blocked)

	open := subtractIntervals(windows, blocked)

	duration := time.Duration(query.DurationMinutes) * time.Minute
	var slots []models.Slot
	for _, w := range open {
		slots = append(slots, walkWindow(w, duration, blocked, pw.ID, now, today)...)
	}
	return slots
}

func (se *DefaultSchedulingEngine) strategyFor(mode models.BookingMode) slotStrategy {
	if mode == models.ModeReturningUser {
		return &returningUserStrategy{Events: se.Events}
	}
	return &newUserStrategy{Events: se.Events}
}

// businessWindow is the fixed local-time window slots may fall in.
func (se *DefaultSchedulingEngine) businessWindow(date time.Time) models.TimeInterval {
	openHour, closeHour := se.OpenHour, se.CloseHour
	if openHour == 0 && closeHour == 0 {
		openHour, closeHour = 7, 20
	}
	return models.TimeInterval{
		Start: time.Date(date.Year(), date.Month(), date.Day(), openHour, 0, 0, 0, date.Location()),
		End:   time.Date(date.Year(), date.Month(), date.Day(), closeHour, 0, 0, 0, date.Location()),
	}
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

func validateQuery(query models.SlotQuery) error {
	if query.FacilityID == "" {
		return fmt.Errorf("slot query missing facility id")
	}
	if query.Date.IsZero() {
		return fmt.Errorf("slot query missing date")
	}
	if query.DurationMinutes <= 0 {
		return fmt.Errorf("slot query duration must be positive, got %d", query.DurationMinutes)
	}
	switch query.Mode {
	case models.ModeNewUser, models.ModeReturningUser:
	default:
		return fmt.Errorf("unknown booking mode %q", query.Mode)
	}
	return nil
}

// checkDataContract enforces the fields the read interfaces guarantee.
// Violations surface as SchemaError, a user-actionable class distinct
// from fetch failures; partially-filled time fields degrade later to
// drop-and-log instead.
func checkDataContract(events []models.AvailabilityEvent, bookings []models.BookingRecord) error {
	for _, ev := range events {
		if ev.HostID == "" {
			return NewSchemaError("availability events", "hostId", "is missing")
		}
	}
	for _, b := range bookings {
		if b.BookingID == "" {
			return NewSchemaError("bookings", "bookingId", "is missing")
		}
	}
	return nil
}
