package handlers

import (
	"errors"
	"net/http"

	"lawncare/internal/intake"
	"lawncare/internal/repository"

	"github.com/gin-gonic/gin"
)

// Request DTO for submitting a support request.
type supportRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Department  string `json:"department"`
	Priority    string `json:"priority"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// SupportRequestBody is an exported model for Swagger docs of the submit payload.
type SupportRequestBody struct {
	Name string `json:"name" example:"Jamie Doe"`
	// Reply-to address for the confirmation email
	Email string `json:"email" example:"jamie@example.com"`
	// Defaults to General when omitted
	Department string `json:"department,omitempty" example:"technical_support"`
	// Defaults to Medium when omitted
	Priority    string `json:"priority,omitempty" example:"high"`
	Subject     string `json:"subject" example:"Watering timer stuck"`
	Description string `json:"description" example:"The countdown never reaches zero."`
}

// @Summary      Submit support request
// @Description  Stores the request and notifies the coordinator plus the requester. Email delivery state is reported but never blocks submission.
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        body  body  SupportRequestBody  true  "Request payload"
// @Success      201  {object}  intake.Receipt
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/support/requests [post]
// @Security     BearerAuth
func (h *Handler) submitRequest(c *gin.Context) {
	var req supportRequestBody
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	rec, err := h.services.Intake.Submit(c.Request.Context(), intake.Submission{
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Priority:    req.Priority,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, intake.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to store support request", "support_submit_failed", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// @Summary      List support requests
// @Tags         support
// @Produce      json
// @Param        priority    query  string  false  "Filter by priority"
// @Param        department  query  string  false  "Filter by department"
// @Success      200  {object}  map[string]interface{}  "count, requests"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/support/requests [get]
// @Security     BearerAuth
func (h *Handler) listRequests(c *gin.Context) {
	reqs, err := h.services.Intake.History(c.Request.Context(), repository.RequestFilter{
		Priority:   c.Query("priority"),
		Department: c.Query("department"),
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load support requests", "support_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(reqs),
		"requests": reqs,
	})
}
