package handlers

import (
	"net/http"
	"strconv"

	"lawncare"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// regionFromQuery resolves the optional ?region= parameter; central is the
// default zone.
func regionFromQuery(c *gin.Context) (lawncare.Region, bool) {
	s := c.DefaultQuery("region", string(lawncare.RegionCentral))
	r, ok := lawncare.ParseRegion(s)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region: must be northern, central, or southern"})
		return "", false
	}
	return r, true
}

// monthParam parses and range-checks a month value from a string.
func monthParam(c *gin.Context, raw string) (int, bool) {
	m, err := strconv.Atoi(raw)
	if err != nil || m < 1 || m > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
		return 0, false
	}
	return m, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
