package handlers

import (
	"errors"
	"net/http"
	"strings"

	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardHandler handles HTTP requests for the coordination board
type BoardHandler struct {
	boardService service.BoardServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService service.BoardServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// RestoreDayRequest carries the undo snapshot of a cleared day
type RestoreDayRequest struct {
	Snapshot []models.CaseRecord `json:"snapshot" binding:"required"`
}

// ReplaceRoomsRequest carries the new room configuration
type ReplaceRoomsRequest struct {
	Rooms []string `json:"rooms" binding:"required"`
}

func dateParam(c *gin.Context) string {
	return strings.TrimSpace(c.Query("date"))
}

// GetBoard handles GET /board
// @Summary Get the board of one day
// @Description Get the room-grouped board view with owners, plan labels and ordered cases
// @Tags board
// @Accept json
// @Produce json
// @Param date query string true "Board date (YYYY-MM-DD)"
// @Success 200 {object} service.BoardResponse "Board view"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	board, err := h.boardService.ListBoard(date)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateCase handles POST /board/cases
// @Summary Register a case
// @Description Register a new surgical case; an empty room is resolved from the duty roster
// @Tags board
// @Accept json
// @Produce json
// @Param case body service.CreateCaseRequest true "Case data"
// @Success 201 {object} service.CaseResponse "Case created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /board/cases [post]
func (h *BoardHandler) CreateCase(c *gin.Context) {
	var req service.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.boardService.CreateCase(&req)
	if err != nil {
		if apperrors.IsValidation(err) || strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCase handles GET /board/cases/:id
// @Summary Get a case
// @Description Get one case by its ID
// @Tags board
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} service.CaseResponse "Case found"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /board/cases/{id} [get]
func (h *BoardHandler) GetCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case ID format"})
		return
	}

	resp, err := h.boardService.GetCase(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get case", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCase handles PUT /board/cases/:id
// @Summary Edit a case
// @Description Edit a case; the request must carry the version the client last saw
// @Tags board
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param case body service.UpdateCaseRequest true "Fields to update"
// @Success 200 {object} service.CaseResponse "Case updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 409 {object} ErrorResponse "Version conflict"
// @Security BearerAuth
// @Router /board/cases/{id} [put]
func (h *BoardHandler) UpdateCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case ID format"})
		return
	}

	var req service.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.boardService.UpdateCase(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		if errors.Is(err, apperrors.ErrVersionConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Case was modified by another writer, reload and retry"})
			return
		}
		if apperrors.IsValidation(err) || strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCase handles DELETE /board/cases/:id
// @Summary Delete a case
// @Description Remove a case from the board
// @Tags board
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Success 204 "Case deleted"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /board/cases/{id} [delete]
func (h *BoardHandler) DeleteCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case ID format"})
		return
	}

	if err := h.boardService.DeleteCase(id); err != nil {
		if errors.Is(err, apperrors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearDay handles POST /board/clear
// @Summary Clear a day
// @Description Remove every case of one day and return the removed records as an undo snapshot
// @Tags board
// @Accept json
// @Produce json
// @Param date query string true "Day to clear (YYYY-MM-DD)"
// @Success 200 {object} service.ClearDayResponse "Day cleared"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /board/clear [post]
func (h *BoardHandler) ClearDay(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	resp, err := h.boardService.ClearDay(date)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear day", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RestoreDay handles POST /board/restore
// @Summary Restore a cleared day
// @Description Put a previously cleared day back from its undo snapshot
// @Tags board
// @Accept json
// @Produce json
// @Param date query string true "Day to restore (YYYY-MM-DD)"
// @Param snapshot body RestoreDayRequest true "Undo snapshot"
// @Success 200 {object} map[string]interface{} "Day restored"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /board/restore [post]
func (h *BoardHandler) RestoreDay(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	var req RestoreDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.boardService.RestoreDay(date, req.Snapshot); err != nil {
		if errors.Is(err, apperrors.ErrEmptySnapshot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Snapshot is empty, nothing to restore"})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore day", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "restored": len(req.Snapshot)})
}

// ListRooms handles GET /board/rooms
// @Summary List configured rooms
// @Description Get the configured operating room names in board order
// @Tags board
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Room names"
// @Security BearerAuth
// @Router /board/rooms [get]
func (h *BoardHandler) ListRooms(c *gin.Context) {
	rooms, err := h.boardService.ListRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// ReplaceRooms handles PUT /board/rooms
// @Summary Replace the room configuration
// @Description Replace the configured room list; names are normalized and invalid ones dropped
// @Tags board
// @Accept json
// @Produce json
// @Param rooms body ReplaceRoomsRequest true "New room list"
// @Success 200 {object} map[string]interface{} "Stored room names"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /board/rooms [put]
func (h *BoardHandler) ReplaceRooms(c *gin.Context) {
	var req ReplaceRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	rooms, err := h.boardService.ReplaceRooms(req.Rooms)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace rooms", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GetSeq handles GET /board/seq
// @Summary Get the board change counter
// @Description Get the monotonic change counter clients poll to detect board changes
// @Tags board
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Current counter"
// @Security BearerAuth
// @Router /board/seq [get]
func (h *BoardHandler) GetSeq(c *gin.Context) {
	seq, err := h.boardService.Seq()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read counter", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"seq": seq})
}

// NextQueue handles GET /board/next-queue
// @Summary Suggest the next queue position
// @Description Suggest the queue slot for a new case of the same doctor, room and day
// @Tags board
// @Accept json
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param room query string true "Room name"
// @Param doctor query string true "Doctor name"
// @Success 200 {object} map[string]interface{} "Suggested queue position"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /board/next-queue [get]
func (h *BoardHandler) NextQueue(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	pos, err := h.boardService.NextQueuePosition(date, c.Query("room"), c.Query("doctor"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute queue position", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"queue": pos})
}
