package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mediflow/models"
	"mediflow/services/scheduling"
	"mediflow/services/tasks"
	"mediflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the slot computation engine over HTTP.
type AvailabilityHandler struct {
	Engine    scheduling.SchedulingEngine
	Cache     *scheduling.SlotCache
	WarmQueue *asynq.Client
}

func NewAvailabilityHandler(engine scheduling.SchedulingEngine, cache *scheduling.SlotCache, warmQueue *asynq.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Cache: cache, WarmQueue: warmQueue}
}

// GetSlotsHandler computes available slots for a facility and date.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	query, err := parseSlotQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability query", err.Error())
		return
	}

	slots, err := h.Engine.ComputeAvailableSlots(c.Request.Context(), query)
	if err != nil {
		var schemaErr *scheduling.SchemaError
		var fetchErr *scheduling.FetchError
		switch {
		case errors.Is(err, scheduling.ErrSuperseded):
			c.JSON(http.StatusConflict, gin.H{"error": "Query superseded by a newer request"})
		case errors.As(err, &schemaErr):
			logger.Error("GetSlotsHandler: data contract violation", zap.Error(err))
			utils.JSONError(c, http.StatusUnprocessableEntity, "Data integrity issue, contact support", schemaErr.Error())
		case errors.As(err, &fetchErr):
			logger.Error("GetSlotsHandler: upstream fetch failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Failed to load scheduling data", fetchErr.Error())
		default:
			logger.Error("GetSlotsHandler: computation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute available slots", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"facilityId": query.FacilityID,
		"date":       query.Date.Format("2006-01-02"),
		"slots":      slots,
	})
}

// RefreshSlotsHandler evicts a cached slot key and queues its
// recomputation in the background.
func (h *AvailabilityHandler) RefreshSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload tasks.RefreshSlotsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid refresh request", err.Error())
		return
	}

	query, err := payload.Query()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid refresh date", err.Error())
		return
	}
	if err := queryRefreshable(query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid refresh request", err.Error())
		return
	}

	key := scheduling.KeyForQuery(query)
	h.Cache.Evict(c.Request.Context(), key)

	task, err := tasks.NewRefreshSlotsTask(payload)
	if err != nil {
		logger.Error("RefreshSlotsHandler: failed to build refresh task", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to schedule refresh", err.Error())
		return
	}
	if _, err := h.WarmQueue.Enqueue(task); err != nil {
		logger.Error("RefreshSlotsHandler: failed to enqueue refresh task", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to schedule refresh", err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Slot refresh scheduled",
		"key":     key.String(),
	})
}

func parseSlotQuery(c *gin.Context) (models.SlotQuery, error) {
	facilityID := c.Query("facilityId")
	if facilityID == "" {
		return models.SlotQuery{}, errMissingParam("facilityId")
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		return models.SlotQuery{}, errBadParam("date", "expected YYYY-MM-DD")
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		return models.SlotQuery{}, errBadParam("duration", "expected a positive number of minutes")
	}

	mode := models.BookingMode(c.DefaultQuery("mode", string(models.ModeNewUser)))
	if mode != models.ModeNewUser && mode != models.ModeReturningUser {
		return models.SlotQuery{}, errBadParam("mode", "expected new_user or returning_user")
	}

	var candidates []string
	if raw := c.Query("practitioners"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				candidates = append(candidates, id)
			}
		}
	}

	return models.SlotQuery{
		FacilityID:               facilityID,
		Date:                     date,
		DurationMinutes:          duration,
		Mode:                     mode,
		TargetPractitionerID:     c.Query("practitionerId"),
		CandidatePractitionerIDs: candidates,
	}, nil
}

func queryRefreshable(q models.SlotQuery) error {
	if q.FacilityID == "" {
		return errMissingParam("facilityId")
	}
	if q.DurationMinutes <= 0 {
		return errBadParam("durationMinutes", "expected a positive number of minutes")
	}
	if q.Mode != models.ModeNewUser && q.Mode != models.ModeReturningUser {
		return errBadParam("mode", "expected new_user or returning_user")
	}
	return nil
}
