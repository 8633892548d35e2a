package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"lawncare"
	"lawncare/internal/service"

	"github.com/gin-gonic/gin"
)

const errActivityRequired = "activity query parameter is required"

// activityFromQuery resolves the required ?activity= parameter.
func (h *Handler) activityFromQuery(c *gin.Context) (lawncare.Activity, bool) {
	s := c.Query("activity")
	if s == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errActivityRequired})
		return "", false
	}
	a, ok := lawncare.ParseActivity(s)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity: " + s})
		return "", false
	}
	return a, true
}

// @Summary      Get timing window
// @Description  Month range and temperature band for an activity in a region
// @Tags         timing
// @Produce      json
// @Param        region    query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        activity  query  string  true   "Activity identifier"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timing/window [get]
// @Security     BearerAuth
func (h *Handler) getWindow(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	activity, ok := h.activityFromQuery(c)
	if !ok {
		return
	}

	w, err := h.services.Timing.Window(region, activity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"region":   region,
		"activity": activity,
		"window":   w,
	})
}

// @Summary      Check optimal timing
// @Description  Whether the given month and temperature fall inside the activity's window
// @Tags         timing
// @Produce      json
// @Param        region    query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        activity  query  string  true   "Activity identifier"
// @Param        month     query  int     true   "Month (1-12)"
// @Param        temp      query  int     true   "Temperature °F"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timing/optimal [get]
// @Security     BearerAuth
func (h *Handler) getOptimal(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	activity, ok := h.activityFromQuery(c)
	if !ok {
		return
	}
	month, ok := monthParam(c, c.Query("month"))
	if !ok {
		return
	}
	temp, err := strconv.Atoi(c.Query("temp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temp must be an integer (°F)"})
		return
	}

	optimal, err := h.services.Timing.IsOptimal(region, activity, month, temp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"region":   region,
		"activity": activity,
		"month":    month,
		"temp":     temp,
		"optimal":  optimal,
	})
}

// @Summary      Next optimal window
// @Description  Nearest future (or in-progress) occurrence of the activity's window as calendar dates
// @Tags         timing
// @Produce      json
// @Param        region    query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        activity  query  string  true   "Activity identifier"
// @Param        from      query  string  false  "Reference date (YYYY-MM-DD); defaults to today"
// @Success      200  {object}  lawncare.WindowForecast
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timing/next-window [get]
// @Security     BearerAuth
func (h *Handler) getNextWindow(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	activity, ok := h.activityFromQuery(c)
	if !ok {
		return
	}

	var from time.Time
	if qs := c.Query("from"); qs != "" {
		parsed, err := time.Parse("2006-01-02", qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date; use YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	fc, err := h.services.Timing.NextWindow(region, activity, from)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary      Yearly schedule
// @Description  Map of month (1-12) to recommended activities for a region
// @Tags         timing
// @Produce      json
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timing/schedule [get]
// @Security     BearerAuth
func (h *Handler) getSchedule(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}

	sched, err := h.services.Timing.Schedule(region)
	if err != nil {
		if errors.Is(err, service.ErrUnknownRegion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to build schedule", "timing_schedule_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"region":   region,
		"schedule": sched,
	})
}

// @Summary      Activities for a month
// @Tags         timing
// @Produce      json
// @Param        month   path   int     true   "Month (1-12)"
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timing/month/{month} [get]
// @Security     BearerAuth
func (h *Handler) getMonthActivities(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	month, ok := monthParam(c, c.Param("month"))
	if !ok {
		return
	}

	acts, err := h.services.Timing.ActivitiesForMonth(region, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"region":     region,
		"month":      month,
		"activities": acts,
	})
}
