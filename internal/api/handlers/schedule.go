package handlers

import (
	"fmt"
	"net/http"
	"time"

	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/scheduling"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for schedule queries and reconciliation
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListSchedule handles GET /schedule
// @Summary List schedule assignments
// @Description List assignments over an inclusive date range for a specialty. Omitting the plan matches only rows without a plan.
// @Tags schedule
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param specialty query string true "Specialty"
// @Param plan query string false "Healthcare plan"
// @Success 200 {array} service.AssignmentResponse "Assignments"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule [get]
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	from, err := scheduling.ParseDay(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := scheduling.ParseDay(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
		return
	}
	specialty := c.Query("specialty")
	if specialty == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty is required"})
		return
	}
	plan, ok := planParam(c)
	if !ok {
		return
	}

	assignments, err := h.scheduleService.List(from, to, specialty, plan)
	if err != nil {
		if err == apperrors.ErrInvalidDateRange {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// Reconcile handles POST /schedule/reconcile
// @Summary Reconcile staged schedule edits
// @Description Converge a batch of staged entries and deletions with persisted assignments. Partial failures return 207 with the applied/failed split.
// @Tags schedule
// @Accept json
// @Produce json
// @Param batch body service.ReconcileRequest true "Staged entries and deletions"
// @Success 200 {object} service.ReconcileResult "All operations applied"
// @Success 207 {object} service.ReconcileResult "Some operations failed"
// @Failure 400 {object} map[string]interface{} "Invalid batch"
// @Failure 409 {object} service.ReconcileResult "Every operation failed on a write conflict"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule/reconcile [post]
func (h *ScheduleHandler) Reconcile(c *gin.Context) {
	var req service.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scheduleService.Reconcile(&req)
	if err != nil {
		if apperrors.IsPartialBatch(err) {
			// staged edits for the failed keys are preserved client-side;
			// the split tells the UI what to re-stage
			if len(result.Applied) == 0 && allConflicts(result.Failed) {
				c.JSON(http.StatusConflict, result)
				return
			}
			c.JSON(http.StatusMultiStatus, result)
			return
		}
		if apperrors.IsPlanRequired(err) || apperrors.IsValidation(err) ||
			err == apperrors.ErrInvalidDateFormat || err == apperrors.ErrInvalidSecondPhonePref {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func allConflicts(failed []service.OperationResult) bool {
	for _, op := range failed {
		if !op.Conflict {
			return false
		}
	}
	return len(failed) > 0
}

// DeleteAssignment handles DELETE /schedule
// @Summary Delete a schedule assignment
// @Description Remove the assignment identified by date, specialty, provider, and optional plan.
// @Tags schedule
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Param specialty query string true "Specialty"
// @Param provider query string true "Provider name"
// @Param plan query string false "Healthcare plan"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule [delete]
func (h *ScheduleHandler) DeleteAssignment(c *gin.Context) {
	date, err := scheduling.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidDateFormat.Error()})
		return
	}
	specialty := c.Query("specialty")
	provider := c.Query("provider")
	if specialty == "" || provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty and provider are required"})
		return
	}
	plan, ok := planParam(c)
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(date, specialty, provider, plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportSchedule handles GET /schedule/export
// @Summary Export a month of assignments
// @Description Download the month's schedule as an XLSX workbook.
// @Tags schedule
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string true "Month (YYYY-MM)"
// @Param specialty query string false "Specialty filter"
// @Success 200 {file} binary "Workbook"
// @Failure 400 {object} map[string]interface{} "Invalid month"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule/export [get]
func (h *ScheduleHandler) ExportSchedule(c *gin.Context) {
	month, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
		return
	}

	data, filename, err := h.scheduleService.ExportMonth(month, c.Query("specialty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
