package handlers

import (
	"net/http"
	"time"

	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/scheduling"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OnCallHandler handles HTTP requests for on-call resolution
type OnCallHandler struct {
	oncallService service.OnCallServiceInterface
}

// NewOnCallHandler creates a new on-call handler
func NewOnCallHandler(oncallService service.OnCallServiceInterface) *OnCallHandler {
	return &OnCallHandler{oncallService: oncallService}
}

// planParam extracts the optional healthcare plan query parameter,
// distinguishing "absent" (nil) from "present but empty" (rejected).
func planParam(c *gin.Context) (*string, bool) {
	plan, given := c.GetQuery("plan")
	if !given {
		return nil, true
	}
	if plan == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrEmptyPlanFilter.Error()})
		return nil, false
	}
	return &plan, true
}

// GetOnCall handles GET /oncall
// @Summary Resolve the on-call provider
// @Description Resolve the active provider and contact chain for a specialty, optional plan, and day. Without a date the current effective on-call day is used (days roll over at 07:00).
// @Tags oncall
// @Produce json
// @Param specialty query string true "Specialty"
// @Param plan query string false "Healthcare plan (required for plan-keyed specialties)"
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} service.ResolvedAssignmentResponse "Resolved assignment"
// @Failure 400 {object} map[string]interface{} "Missing specialty or plan"
// @Failure 404 {object} map[string]interface{} "No assignment for the key"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /oncall [get]
func (h *OnCallHandler) GetOnCall(c *gin.Context) {
	specialty := c.Query("specialty")
	if specialty == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty is required"})
		return
	}

	plan, ok := planParam(c)
	if !ok {
		return
	}

	var resolved *service.ResolvedAssignmentResponse
	var err error
	if dateStr := c.Query("date"); dateStr != "" {
		day, parseErr := scheduling.ParseDay(dateStr)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidDateFormat.Error()})
			return
		}
		resolved, err = h.oncallService.Resolve(specialty, plan, day)
	} else {
		resolved, err = h.oncallService.ResolveActive(specialty, plan, time.Now())
	}

	if err != nil {
		if apperrors.IsPlanRequired(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": "plan-required"})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "reason": "no-assignment"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolved)
}
