package handlers

import (
	"errors"
	"net/http"

	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LifecycleHandler handles HTTP requests for case lifecycle operations
type LifecycleHandler struct {
	lifecycleService service.LifecycleServiceInterface
}

// NewLifecycleHandler creates a new lifecycle handler
func NewLifecycleHandler(lifecycleService service.LifecycleServiceInterface) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleService: lifecycleService,
	}
}

// MonitorRequest carries a batch of tracking-board observations
type MonitorRequest struct {
	Observations []service.StatusObservation `json:"observations" binding:"required"`
}

// ApplyMonitor handles POST /lifecycle/monitor
// @Summary Apply tracking-board observations
// @Description Fold a batch of patient status observations into case lifecycle state
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param observations body MonitorRequest true "Status observations"
// @Success 200 {object} map[string]interface{} "Number of cases advanced"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /lifecycle/monitor [post]
func (h *LifecycleHandler) ApplyMonitor(c *gin.Context) {
	var req MonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	applied, err := h.lifecycleService.ApplySignals(req.Observations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply observations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// MarkReturning handles POST /lifecycle/cases/:uid/returning
// @Summary Mark a case as returning to the ward
// @Description Start the ward-return grace clock for a case; rejected without a recorded end time
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param uid path string true "Case UID"
// @Success 200 {object} models.CaseRecord "Case marked returning"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 422 {object} ErrorResponse "Operation end time missing"
// @Security BearerAuth
// @Router /lifecycle/cases/{uid}/returning [post]
func (h *LifecycleHandler) MarkReturning(c *gin.Context) {
	record, err := h.lifecycleService.MarkReturning(c.Param("uid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		if errors.Is(err, apperrors.ErrReturningWithoutEndTime) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Operation end time is not recorded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark case returning", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// PatchCase handles PATCH /lifecycle/cases/:uid
// @Summary Apply a partial external update
// @Description Patch the allow-listed fields of a case; state may only move forward
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param uid path string true "Case UID"
// @Param patch body service.PatchCaseRequest true "Fields to patch"
// @Success 200 {object} models.CaseRecord "Case updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 409 {object} ErrorResponse "Backward transition or concurrent edit"
// @Failure 422 {object} ErrorResponse "Operation end time missing"
// @Security BearerAuth
// @Router /lifecycle/cases/{uid} [patch]
func (h *LifecycleHandler) PatchCase(c *gin.Context) {
	var req service.PatchCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.lifecycleService.Patch(c.Param("uid"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		if errors.Is(err, apperrors.ErrBackwardTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "State cannot move backwards"})
			return
		}
		if errors.Is(err, apperrors.ErrVersionConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Case was modified by another writer, reload and retry"})
			return
		}
		if errors.Is(err, apperrors.ErrReturningWithoutEndTime) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Operation end time is not recorded yet"})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown case state"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to patch case", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Sweep handles POST /lifecycle/sweep
// @Summary Settle returning cases
// @Description Run one sweep over cases past the returning grace period
// @Tags lifecycle
// @Accept json
// @Produce json
// @Success 200 {object} service.SweepResult "Sweep result"
// @Security BearerAuth
// @Router /lifecycle/sweep [post]
func (h *LifecycleHandler) Sweep(c *gin.Context) {
	result, err := h.lifecycleService.SweepReturning()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEvents handles GET /lifecycle/cases/:uid/events
// @Summary Get the audit trail of a case
// @Description Get the recorded lifecycle events of a case, oldest first
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param uid path string true "Case UID"
// @Success 200 {object} map[string]interface{} "Case events"
// @Security BearerAuth
// @Router /lifecycle/cases/{uid}/events [get]
func (h *LifecycleHandler) GetEvents(c *gin.Context) {
	events, err := h.lifecycleService.Events(c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
