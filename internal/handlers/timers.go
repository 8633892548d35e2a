package handlers

import (
	"context"
	"errors"
	"net/http"

	"lawncare"
	"lawncare/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating a timer.
type createTimerRequest struct {
	DurationMinutes float64 `json:"duration_minutes" binding:"required"`
}

// CreateTimerRequest is an exported model for Swagger docs of the create payload.
type CreateTimerRequest struct {
	// Countdown duration in minutes; fractional values allowed
	DurationMinutes float64 `json:"duration_minutes" example:"30"`
}

// timerOpError maps service errors to HTTP responses.
func (h *Handler) timerOpError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrTimerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "timer operation failed", logKey, err)
	}
}

// @Summary      Create watering timer
// @Tags         timers
// @Accept       json
// @Produce      json
// @Param        body  body  CreateTimerRequest  true  "Timer payload"
// @Success      201  {object}  lawncare.TimerStatus
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timers [post]
// @Security     BearerAuth
func (h *Handler) createTimer(c *gin.Context) {
	var req createTimerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	st, err := h.services.Timers.Create(c.Request.Context(), req.DurationMinutes)
	if err != nil {
		h.timerOpError(c, err, "timer_create_failed")
		return
	}
	c.JSON(http.StatusCreated, st)
}

// @Summary      Get timer status
// @Tags         timers
// @Produce      json
// @Param        id  path  string  true  "Timer ID"
// @Success      200  {object}  lawncare.TimerStatus
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/timers/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTimer(c *gin.Context) {
	st, err := h.services.Timers.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.timerOpError(c, err, "timer_status_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Start timer
// @Description  Starting a paused timer resumes it
// @Tags         timers
// @Produce      json
// @Param        id  path  string  true  "Timer ID"
// @Success      200  {object}  lawncare.TimerStatus
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/timers/{id}/start [post]
// @Security     BearerAuth
func (h *Handler) startTimer(c *gin.Context) {
	h.timerTransition(c, h.services.Timers.Start, "timer_start_failed")
}

// @Summary      Pause timer
// @Tags         timers
// @Produce      json
// @Param        id  path  string  true  "Timer ID"
// @Success      200  {object}  lawncare.TimerStatus
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/timers/{id}/pause [post]
// @Security     BearerAuth
func (h *Handler) pauseTimer(c *gin.Context) {
	h.timerTransition(c, h.services.Timers.Pause, "timer_pause_failed")
}

// @Summary      Resume timer
// @Tags         timers
// @Produce      json
// @Param        id  path  string  true  "Timer ID"
// @Success      200  {object}  lawncare.TimerStatus
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/timers/{id}/resume [post]
// @Security     BearerAuth
func (h *Handler) resumeTimer(c *gin.Context) {
	h.timerTransition(c, h.services.Timers.Resume, "timer_resume_failed")
}

// @Summary      Reset timer
// @Tags         timers
// @Produce      json
// @Param        id  path  string  true  "Timer ID"
// @Success      200  {object}  lawncare.TimerStatus
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/timers/{id}/reset [post]
// @Security     BearerAuth
func (h *Handler) resetTimer(c *gin.Context) {
	h.timerTransition(c, h.services.Timers.Reset, "timer_reset_failed")
}

type timerOp func(ctx context.Context, id string) (lawncare.TimerStatus, error)

func (h *Handler) timerTransition(c *gin.Context, op timerOp, logKey string) {
	st, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.timerOpError(c, err, logKey)
		return
	}
	c.JSON(http.StatusOK, st)
}
