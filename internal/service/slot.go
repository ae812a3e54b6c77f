package service

import (
	"errors"
	"fmt"
	"time"

	"volunteer-checkin-backend/internal/database/models"
	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/repository"
	"volunteer-checkin-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotService orchestrates creation and editing of slots: it validates the
// candidate window against a freshly fetched sibling snapshot, commits the
// slot record, and reconciles the volunteer roster.
type SlotService struct {
	slotRepo     repository.SlotRepositoryInterface
	positionRepo repository.PositionRepositoryInterface
	roster       *RosterService
	validator    *validator.Validate
}

// NewSlotService creates a new slot service
func NewSlotService(slotRepo repository.SlotRepositoryInterface, positionRepo repository.PositionRepositoryInterface, roster *RosterService, validator *validator.Validate) *SlotService {
	return &SlotService{
		slotRepo:     slotRepo,
		positionRepo: positionRepo,
		roster:       roster,
		validator:    validator,
	}
}

// UpsertSlotRequest represents the request to create or edit a slot
type UpsertSlotRequest struct {
	StartTime  *time.Time    `json:"start_time,omitempty"`
	EndTime    *time.Time    `json:"end_time,omitempty"`
	Capacity   int           `json:"capacity,omitempty"`
	Volunteers []RosterEntry `json:"volunteers,omitempty"`
}

// SlotVolunteerResponse represents one roster member in responses
type SlotVolunteerResponse struct {
	VolunteerID uuid.UUID `json:"volunteer_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	CheckedIn   bool      `json:"checked_in"`
	CheckInTime *string   `json:"check_in_time,omitempty"`
}

// SlotResponse represents the response for slot operations
type SlotResponse struct {
	ID                  uuid.UUID               `json:"id"`
	PositionID          uuid.UUID               `json:"position_id"`
	StartTime           *string                 `json:"start_time"`
	EndTime             *string                 `json:"end_time"`
	Capacity            int                     `json:"capacity"`
	VolunteersCheckedIn int                     `json:"volunteers_checked_in"`
	Volunteers          []SlotVolunteerResponse `json:"volunteers"`
	CreatedAt           string                  `json:"created_at"`
}

// SlotListResponse represents the slots of a position
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// Upsert creates a new slot under the position, or edits the slot named by
// editingSlotID. The candidate window is validated against the position
// window and a sibling snapshot fetched immediately before commit; a
// rejection reason is returned to the caller unchanged. On success the slot
// is persisted, the desired volunteer list is reconciled, and the committed
// state is re-read for the response.
func (s *SlotService) Upsert(positionID uuid.UUID, req *UpsertSlotRequest, editingSlotID *uuid.UUID) (*SlotResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	position, err := s.positionRepo.GetByID(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}

	siblings, err := s.slotRepo.GetSiblingRanges(positionID, editingSlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sibling slots: %w", err)
	}

	window := schedule.NewRange(position.StartTime, position.EndTime)
	if err := schedule.ValidateSlotRange(req.StartTime, req.EndTime, window, toSlotRanges(siblings), editingSlotID); err != nil {
		return nil, err
	}

	start := normalizeTime(req.StartTime)
	end := normalizeTime(req.EndTime)
	capacity := req.Capacity
	if capacity < 1 {
		capacity = 1
	}

	var slot *models.Slot
	if editingSlotID == nil {
		slot = &models.Slot{
			PositionID: positionID,
			StartTime:  start,
			EndTime:    end,
			Capacity:   capacity,
		}
		if err := s.slotRepo.Create(slot); err != nil {
			return nil, fmt.Errorf("failed to create slot: %w", err)
		}
	} else {
		slot, err = s.slotRepo.GetByID(*editingSlotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSlotNotFound
			}
			return nil, fmt.Errorf("failed to get slot: %w", err)
		}
		// A slot is only editable under its own position; otherwise the
		// window was just validated against the wrong position and the
		// wrong sibling set.
		if slot.PositionID != positionID {
			return nil, apperrors.ErrSlotNotFound
		}
		slot.StartTime = start
		slot.EndTime = end
		slot.Capacity = capacity
		if err := s.slotRepo.Update(slot); err != nil {
			return nil, fmt.Errorf("failed to update slot: %w", err)
		}
	}

	// The slot stays persisted even when roster reconciliation fails;
	// there is no compensating rollback.
	if err := s.roster.Reconcile(slot.ID, req.Volunteers); err != nil {
		return nil, err
	}

	// Read-your-writes: respond from a fresh fetch rather than patching
	// the in-memory copy.
	committed, err := s.slotRepo.GetWithVolunteers(slot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload slot: %w", err)
	}

	return s.toResponse(committed), nil
}

// GetByPosition retrieves all slots of a position with their rosters
func (s *SlotService) GetByPosition(positionID uuid.UUID) (*SlotListResponse, error) {
	if _, err := s.positionRepo.GetByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}

	slots, err := s.slotRepo.GetByPositionID(positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	responses := make([]SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *s.toResponse(&slots[i])
	}

	return &SlotListResponse{Slots: responses, Total: len(responses)}, nil
}

// GetByID retrieves a slot with its roster
func (s *SlotService) GetByID(id uuid.UUID) (*SlotResponse, error) {
	slot, err := s.slotRepo.GetWithVolunteers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return s.toResponse(slot), nil
}

// Delete deletes a slot and its roster rows
func (s *SlotService) Delete(id uuid.UUID) error {
	if _, err := s.slotRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSlotNotFound
		}
		return fmt.Errorf("failed to get slot: %w", err)
	}

	if err := s.roster.Clear(id); err != nil {
		return err
	}

	if err := s.slotRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	return nil
}

// toResponse converts a slot model to response
func (s *SlotService) toResponse(slot *models.Slot) *SlotResponse {
	response := &SlotResponse{
		ID:         slot.ID,
		PositionID: slot.PositionID,
		StartTime:  formatTimePtr(slot.StartTime),
		EndTime:    formatTimePtr(slot.EndTime),
		Capacity:   slot.Capacity,
		CreatedAt:  slot.CreatedAt.UTC().Format(time.RFC3339),
	}

	response.Volunteers = make([]SlotVolunteerResponse, len(slot.Volunteers))
	for i, membership := range slot.Volunteers {
		name := membership.Name
		if name == "" {
			name = membership.Volunteer.Name
		}
		response.Volunteers[i] = SlotVolunteerResponse{
			VolunteerID: membership.VolunteerID,
			Email:       membership.Volunteer.Email,
			Name:        name,
			CheckedIn:   membership.CheckedIn,
			CheckInTime: formatTimePtr(membership.CheckInTime),
		}
	}
	response.VolunteersCheckedIn = slot.CheckedInCount()

	return response
}

func toSlotRanges(slots []models.Slot) []schedule.SlotRange {
	ranges := make([]schedule.SlotRange, len(slots))
	for i, slot := range slots {
		ranges[i] = schedule.SlotRange{ID: slot.ID, Start: slot.StartTime, End: slot.EndTime}
	}
	return ranges
}

// normalizeTime pins a timestamp to UTC so stored instants are unambiguous
func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
