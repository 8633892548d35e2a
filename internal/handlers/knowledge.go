package handlers

import (
	"net/http"

	"lawncare/internal/knowledge"

	"github.com/gin-gonic/gin"
)

// Request DTO for identification.
type identifyRequest struct {
	Features []string `json:"features" binding:"required"`
}

// IdentifyRequest is an exported model for Swagger docs of the identify payload.
type IdentifyRequest struct {
	// Observed characteristics, free text (e.g. "wide leaves", "star pattern")
	Features []string `json:"features" example:"wide leaves,star pattern"`
}

// Request DTO for diagnosing a control failure.
type diagnoseRequest struct {
	TreatmentApplied string `json:"treatment_applied" binding:"required"`
	ApplicationMonth int    `json:"application_month" binding:"required"`
	CrabgrassLevel   string `json:"crabgrass_level"`
}

// DiagnoseRequest is an exported model for Swagger docs of the diagnose payload.
type DiagnoseRequest struct {
	// Treatment that was applied (e.g. pre_emergent, post_emergent)
	TreatmentApplied string `json:"treatment_applied" example:"pre_emergent"`
	// Month the treatment was applied (1-12)
	ApplicationMonth int `json:"application_month" example:"6"`
	// Current infestation level: low, moderate, or high
	CrabgrassLevel string `json:"crabgrass_level" example:"high"`
}

// @Summary      Identification guide
// @Description  Distinguishing features of large and smooth crabgrass
// @Tags         crabgrass
// @Produce      json
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/guide [get]
// @Security     BearerAuth
func (h *Handler) getGuide(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	guide, err := h.services.Knowledge.Guide(region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "guide": guide})
}

// @Summary      Identify crabgrass type
// @Description  Scores observed features against known characteristics of each type
// @Tags         crabgrass
// @Accept       json
// @Produce      json
// @Param        region  query  string          false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        body    body   IdentifyRequest  true   "Observed features"
// @Success      200  {object}  knowledge.IdentificationResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/identify [post]
// @Security     BearerAuth
func (h *Handler) identify(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	var req identifyRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	result, err := h.services.Knowledge.Identify(region, req.Features)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Treatment recommendations
// @Description  Ranked treatments for a month; growth stage inferred from month when omitted
// @Tags         crabgrass
// @Produce      json
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        month   query  int     true   "Month (1-12)"
// @Param        stage   query  string  false  "Growth stage"  Enums(seed,germination,seedling,mature,seed_production)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/treatments [get]
// @Security     BearerAuth
func (h *Handler) getTreatments(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	month, ok := monthParam(c, c.Query("month"))
	if !ok {
		return
	}

	stage := knowledge.Stage(c.Query("stage"))
	recs, err := h.services.Knowledge.Treatments(region, month, stage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"region":          region,
		"month":           month,
		"recommendations": recs,
	})
}

// @Summary      Lifecycle information
// @Tags         crabgrass
// @Produce      json
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        stage   query  string  false  "Single growth stage; all stages when omitted"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/lifecycle [get]
// @Security     BearerAuth
func (h *Handler) getLifecycle(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	info, err := h.services.Knowledge.Lifecycle(region, knowledge.Stage(c.Query("stage")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "lifecycle": info})
}

// @Summary      Prevention strategies
// @Tags         crabgrass
// @Produce      json
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/prevention [get]
// @Security     BearerAuth
func (h *Handler) getPrevention(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	strategies, err := h.services.Knowledge.Prevention(region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "strategies": strategies})
}

// @Summary      Seasonal control calendar
// @Tags         crabgrass
// @Produce      json
// @Param        region  query  string  false  "Region"  Enums(northern,central,southern)  default(central)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/calendar [get]
// @Security     BearerAuth
func (h *Handler) getCalendar(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	entries, err := h.services.Knowledge.Calendar(region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "calendar": entries})
}

// @Summary      Diagnose control failure
// @Description  Likely causes and corrective actions when a treatment did not work
// @Tags         crabgrass
// @Accept       json
// @Produce      json
// @Param        region  query  string           false  "Region"  Enums(northern,central,southern)  default(central)
// @Param        body    body   DiagnoseRequest  true   "Failure details"
// @Success      200  {object}  knowledge.Diagnosis
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/crabgrass/diagnose [post]
// @Security     BearerAuth
func (h *Handler) diagnose(c *gin.Context) {
	region, ok := regionFromQuery(c)
	if !ok {
		return
	}
	var req diagnoseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.ApplicationMonth < 1 || req.ApplicationMonth > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "application_month must be between 1 and 12"})
		return
	}

	diag, err := h.services.Knowledge.Diagnose(region, req.TreatmentApplied, req.ApplicationMonth, req.CrabgrassLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, diag)
}
