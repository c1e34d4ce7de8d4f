package tasks

import (
	"encoding/json"
	"time"

	"mediflow/models"

	"github.com/hibiken/asynq"
)

const TypeRefreshSlots = "slots:refresh"

// RefreshSlotsPayload identifies one cached slot computation to evict and
// recompute in the background.
type RefreshSlotsPayload struct {
	FacilityID           string             `json:"facilityId"`
	Date                 string             `json:"date"` // YYYY-MM-DD
	DurationMinutes      int                `json:"durationMinutes"`
	Mode                 models.BookingMode `json:"mode"`
	TargetPractitionerID string             `json:"targetPractitionerId,omitempty"`
}

// Query reconstructs the slot query the payload describes.
func (p RefreshSlotsPayload) Query() (models.SlotQuery, error) {
	date, err := time.ParseInLocation("2006-01-02", p.Date, time.Local)
	if err != nil {
		return models.SlotQuery{}, err
	}
	return models.SlotQuery{
		FacilityID:           p.FacilityID,
		Date:                 date,
		DurationMinutes:      p.DurationMinutes,
		Mode:                 p.Mode,
		TargetPractitionerID: p.TargetPractitionerID,
	}, nil
}

func NewRefreshSlotsTask(payload RefreshSlotsPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshSlots, b), nil
}
