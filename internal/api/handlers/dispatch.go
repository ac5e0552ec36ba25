package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"or-caseflow-backend/internal/auth"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DispatchHandler handles HTTP requests for runner synchronization
type DispatchHandler struct {
	dispatchService service.DispatchServiceInterface
}

// NewDispatchHandler creates a new dispatch handler
func NewDispatchHandler(dispatchService service.DispatchServiceInterface) *DispatchHandler {
	return &DispatchHandler{
		dispatchService: dispatchService,
	}
}

// PickupActionRequest identifies a pickup for ack/arrive/finish
type PickupActionRequest struct {
	PickupID string `json:"pickup_id" binding:"required"`
	User     string `json:"user"`
}

func (h *DispatchHandler) actor(c *gin.Context, fallback string) string {
	if station, ok := auth.GetStation(c); ok && station != "" {
		return station
	}
	if fallback != "" {
		return fallback
	}
	return "unknown"
}

// Push handles POST /dispatch/push
// @Summary Push a day's pickups to the runner board
// @Description Send every dispatchable case of a day to the porter runner board
// @Tags dispatch
// @Accept json
// @Produce json
// @Param date query string true "Day to push (YYYY-MM-DD)"
// @Success 200 {object} service.PushResult "Push result"
// @Failure 400 {object} ErrorResponse "Missing date"
// @Failure 502 {object} ErrorResponse "Runner unreachable"
// @Security BearerAuth
// @Router /dispatch/push [post]
func (h *DispatchHandler) Push(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	result, err := h.dispatchService.PushDay(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrRunnerUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Runner board is unreachable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to push pickups", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Status handles GET /dispatch/status
// @Summary Get runner-side pickup statuses
// @Description Get the runner board's view of a day's pickups keyed by pickup id
// @Tags dispatch
// @Accept json
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Pickup statuses"
// @Failure 400 {object} ErrorResponse "Missing date"
// @Failure 502 {object} ErrorResponse "Runner unreachable"
// @Security BearerAuth
// @Router /dispatch/status [get]
func (h *DispatchHandler) Status(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	statuses, err := h.dispatchService.StatusMap(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrRunnerUnavailable) || errors.Is(err, apperrors.ErrRunnerRejected) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Runner board is unreachable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statuses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// Ack handles POST /dispatch/ack
// @Summary Acknowledge a pickup
// @Description Mark a pickup as accepted by a porter
// @Tags dispatch
// @Accept json
// @Produce json
// @Param action body PickupActionRequest true "Pickup to acknowledge"
// @Success 200 {object} map[string]interface{} "Acknowledged"
// @Failure 400 {object} ErrorResponse "Missing pickup id"
// @Failure 502 {object} ErrorResponse "Runner unreachable or rejected"
// @Security BearerAuth
// @Router /dispatch/ack [post]
func (h *DispatchHandler) Ack(c *gin.Context) {
	h.action(c, h.dispatchService.Ack)
}

// Arrive handles POST /dispatch/arrive
// @Summary Mark a porter as arrived
// @Description Mark a porter as arrived at the ward for a pickup
// @Tags dispatch
// @Accept json
// @Produce json
// @Param action body PickupActionRequest true "Pickup to mark arrived"
// @Success 200 {object} map[string]interface{} "Marked arrived"
// @Failure 400 {object} ErrorResponse "Missing pickup id"
// @Failure 502 {object} ErrorResponse "Runner unreachable or rejected"
// @Security BearerAuth
// @Router /dispatch/arrive [post]
func (h *DispatchHandler) Arrive(c *gin.Context) {
	h.action(c, h.dispatchService.Arrive)
}

// Finish handles POST /dispatch/finish
// @Summary Finish a pickup
// @Description Close a pickup on the runner board
// @Tags dispatch
// @Accept json
// @Produce json
// @Param action body PickupActionRequest true "Pickup to finish"
// @Success 200 {object} map[string]interface{} "Finished"
// @Failure 400 {object} ErrorResponse "Missing pickup id"
// @Failure 502 {object} ErrorResponse "Runner unreachable or rejected"
// @Security BearerAuth
// @Router /dispatch/finish [post]
func (h *DispatchHandler) Finish(c *gin.Context) {
	h.action(c, h.dispatchService.Finish)
}

func (h *DispatchHandler) action(c *gin.Context, fn func(ctx context.Context, pickupID, user string) error) {
	var req PickupActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user := h.actor(c, req.User)
	if err := fn(c.Request.Context(), req.PickupID, user); err != nil {
		if errors.Is(err, apperrors.ErrMissingPickupID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pickup_id is required"})
			return
		}
		if errors.Is(err, apperrors.ErrRunnerUnavailable) || errors.Is(err, apperrors.ErrRunnerRejected) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Runner board rejected the request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Runner action failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pickup_id": req.PickupID, "user": user})
}
