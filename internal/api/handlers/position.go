package handlers

import (
	"net/http"
	"strconv"

	"volunteer-checkin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PositionHandler handles HTTP requests for volunteer positions
type PositionHandler struct {
	positionService service.PositionServiceInterface
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionService service.PositionServiceInterface) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
	}
}

// CreatePosition creates a new position
// @Summary Create a new position
// @Description Create a volunteer position under an event. The position window bounds all scheduled slots created under it.
// @Tags positions
// @Accept json
// @Produce json
// @Param position body service.CreatePositionRequest true "Position data"
// @Success 201 {object} service.PositionResponse "Successfully created position"
// @Failure 400 {object} ErrorResponse "Invalid request body or window"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req service.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	position, err := h.positionService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, position)
}

// GetPosition retrieves a position by ID
// @Summary Get position by ID
// @Description Get a specific position by its UUID
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} service.PositionResponse "Successfully retrieved position"
// @Failure 400 {object} ErrorResponse "Invalid position ID"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid position ID"})
		return
	}

	position, err := h.positionService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}

// ListPositionsByEvent lists the positions of an event
// @Summary List positions by event
// @Description Get all positions belonging to an event with pagination
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PositionListResponse "Successfully retrieved positions"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Security BearerAuth
// @Router /events/{id}/positions [get]
func (h *PositionHandler) ListPositionsByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid event ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.positionService.GetByEvent(eventID, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePosition deletes a position
// @Summary Delete position
// @Description Delete a position and, via cascade, its slots and rosters
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 204 "Successfully deleted position"
// @Failure 400 {object} ErrorResponse "Invalid position ID"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid position ID"})
		return
	}

	if err := h.positionService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
