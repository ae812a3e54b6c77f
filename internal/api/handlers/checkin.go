package handlers

import (
	"net/http"

	"volunteer-checkin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckInHandler handles the public self check-in endpoints. These are
// reached from a link on the volunteer's phone, so there is no bearer token
// here; identity is the registered email address.
type CheckInHandler struct {
	checkInService service.CheckInServiceInterface
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInService service.CheckInServiceInterface) *CheckInHandler {
	return &CheckInHandler{
		checkInService: checkInService,
	}
}

// CheckInRequest is the check-in submission payload
type CheckInRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
	Email  string    `json:"email" binding:"required"`
	Name   string    `json:"name"`
}

// GetActiveSlot resolves which slot a check-in link targets
// @Summary Resolve the active slot for a position
// @Description Resolve the slot a check-in page should submit against. With slot_id given, that slot is returned directly. Otherwise the position's slot whose window contains the current time is selected, bounds inclusive, falling back to a slot with no scheduled times.
// @Tags checkin
// @Accept json
// @Produce json
// @Param position_id query string true "Position ID (UUID)"
// @Param slot_id query string false "Explicit slot ID (UUID)"
// @Success 200 {object} service.SlotResponse "Active slot with roster"
// @Failure 400 {object} ErrorResponse "Invalid parameters or no active slot"
// @Router /checkin/slot [get]
func (h *CheckInHandler) GetActiveSlot(c *gin.Context) {
	positionID, err := uuid.Parse(c.Query("position_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid position ID"})
		return
	}

	var explicitSlotID *uuid.UUID
	if raw := c.Query("slot_id"); raw != "" {
		slotID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid slot ID"})
			return
		}
		explicitSlotID = &slotID
	}

	slot, err := h.checkInService.ResolveActiveSlot(positionID, explicitSlotID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// CheckIn marks a registered volunteer as present
// @Summary Check in for a slot
// @Description Mark the volunteer identified by email as checked in on the slot. The email must already be on the slot's roster. Checking in is one-way and happens at most once per volunteer per slot; a second attempt is rejected.
// @Tags checkin
// @Accept json
// @Produce json
// @Param checkin body CheckInRequest true "Check-in submission"
// @Success 200 {object} map[string]interface{} "Checked in"
// @Failure 400 {object} ErrorResponse "Invalid slot or unregistered email"
// @Failure 409 {object} ErrorResponse "Already checked in"
// @Router /checkin [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.checkInService.CheckIn(req.SlotID, req.Email, req.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checked_in": true})
}
