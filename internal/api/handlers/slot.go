package handlers

import (
	"net/http"

	"volunteer-checkin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SlotHandler handles HTTP requests for time slots
type SlotHandler struct {
	slotService service.SlotServiceInterface
}

// NewSlotHandler creates a new slot handler
func NewSlotHandler(slotService service.SlotServiceInterface) *SlotHandler {
	return &SlotHandler{
		slotService: slotService,
	}
}

// CreateSlot creates a new slot under a position
// @Summary Create a time slot
// @Description Create a slot under a position. The slot window must order correctly, fit inside the position window, and not overlap the position's other scheduled slots. Slots sharing only a boundary instant do not overlap. A slot without times bypasses all range validation. The volunteers list, when present, is reconciled additively into the slot roster.
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param slot body service.UpsertSlotRequest true "Slot data"
// @Success 201 {object} service.SlotResponse "Successfully created slot"
// @Failure 400 {object} ErrorResponse "Invalid window or roster"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/{id}/slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid position ID"})
		return
	}

	var req service.UpsertSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.Upsert(positionID, &req, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// UpdateSlot edits an existing slot
// @Summary Edit a time slot
// @Description Edit a slot's window, capacity, or roster. The edited slot is excluded from its own overlap check. Check-in state of existing roster members is never touched by an edit.
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param slot_id path string true "Slot ID (UUID)"
// @Param slot body service.UpsertSlotRequest true "Slot data"
// @Success 200 {object} service.SlotResponse "Successfully updated slot"
// @Failure 400 {object} ErrorResponse "Invalid window or roster"
// @Failure 404 {object} ErrorResponse "Position or slot not found"
// @Security BearerAuth
// @Router /positions/{id}/slots/{slot_id} [put]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid position ID"})
		return
	}

	slotID, err := uuid.Parse(c.Param("slot_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	var req service.UpsertSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.Upsert(positionID, &req, &slotID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// ListSlotsByPosition lists a position's slots
// @Summary List slots by position
// @Description Get all slots belonging to a position, scheduled ones ordered by start time
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} service.SlotListResponse "Successfully retrieved slots"
// @Failure 400 {object} ErrorResponse "Invalid position ID"
// @Security BearerAuth
// @Router /positions/{id}/slots [get]
func (h *SlotHandler) ListSlotsByPosition(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid position ID"})
		return
	}

	resp, err := h.slotService.GetByPosition(positionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSlot retrieves a slot with its roster
// @Summary Get slot by ID
// @Description Get a specific slot with its volunteer roster and check-in state
// @Tags slots
// @Accept json
// @Produce json
// @Param slot_id path string true "Slot ID (UUID)"
// @Success 200 {object} service.SlotResponse "Successfully retrieved slot"
// @Failure 400 {object} ErrorResponse "Invalid slot ID"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Security BearerAuth
// @Router /slots/{slot_id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slot_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	slot, err := h.slotService.GetByID(slotID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DeleteSlot deletes a slot
// @Summary Delete slot
// @Description Delete a slot and its roster memberships
// @Tags slots
// @Accept json
// @Produce json
// @Param slot_id path string true "Slot ID (UUID)"
// @Success 204 "Successfully deleted slot"
// @Failure 400 {object} ErrorResponse "Invalid slot ID"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Security BearerAuth
// @Router /slots/{slot_id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slot_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	if err := h.slotService.Delete(slotID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
