package scheduling

import (
	"strings"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

// isOccurring reports whether the given calendar date is an occurrence of
// the recurrence descriptor.
//
// The rule's anchor is always overridden with ValidFrom, and its UNTIL is
// clamped to ValidTo, so an event can never occur outside its validity
// window no matter what the raw RRULE says. A malformed rule fails closed:
// the event is treated as not occurring, because an ambiguous recurrence
// read as "available" risks overbooking.
func isOccurring(date time.Time, rec models.Recurrence) bool {
	logger := utils.GetLogger()

	day := startOfDay(date)

	// Cheap rejection on the validity window before touching the rule.
	// Bounds are inclusive whole days.
	if !rec.ValidFrom.IsZero() && day.Before(startOfDay(rec.ValidFrom)) {
		return false
	}
	if !rec.ValidTo.IsZero() && day.After(startOfDay(rec.ValidTo)) {
		return false
	}

	ruleText := strings.TrimSpace(rec.Rule)
	ruleText = strings.TrimPrefix(ruleText, "RRULE:")
	if ruleText == "" {
		logger.Warn("isOccurring: empty recurrence rule, treating as non-occurring")
		return false
	}

	rule, err := rrule.StrToRRule(ruleText)
	if err != nil {
		logger.Warn("isOccurring: failed to parse recurrence rule, treating as non-occurring",
			zap.String("rule", ruleText), zap.Error(err))
		return false
	}

	// Anchor the rule at the start of its validity window, in the query
	// date's location so day boundaries line up.
	anchor := rec.ValidFrom
	if anchor.IsZero() {
		anchor = day
	}
	rule.DTStart(startOfDay(anchor.In(date.Location())))

	// Clamp UNTIL to the end of the validity window, keeping an explicit
	// earlier UNTIL from the rule itself.
	if !rec.ValidTo.IsZero() {
		until := endOfDay(rec.ValidTo.In(date.Location()))
		if orig := rule.OrigOptions.Until; !orig.IsZero() && orig.Before(until) {
			until = orig
		}
		rule.Until(until)
	}

	occurrences := rule.Between(day, endOfDay(day), true)
	return len(occurrences) > 0
}

// startOfDay returns local midnight of t's calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last second of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
