package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/logger"
	"volunteer-checkin-backend/internal/repository"
	"volunteer-checkin-backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckInService guards the one-way transition from registered to checked
// in. Per (slot, volunteer) pair the states are: not registered, registered,
// checked in; checked in is terminal.
type CheckInService struct {
	slotRepo      repository.SlotRepositoryInterface
	volunteerRepo repository.VolunteerRepositoryInterface
	rosterRepo    repository.SlotVolunteerRepositoryInterface
	slots         *SlotService
	log           *logger.Logger
}

// NewCheckInService creates a new check-in service
func NewCheckInService(slotRepo repository.SlotRepositoryInterface, volunteerRepo repository.VolunteerRepositoryInterface, rosterRepo repository.SlotVolunteerRepositoryInterface, slots *SlotService) *CheckInService {
	return &CheckInService{
		slotRepo:      slotRepo,
		volunteerRepo: volunteerRepo,
		rosterRepo:    rosterRepo,
		slots:         slots,
		log:           logger.New(),
	}
}

// ResolveActiveSlot resolves the slot a check-in submission targets. With an
// explicit slot id, that slot is fetched directly. Otherwise the position's
// slot whose window contains now is selected, bounds inclusive; a slot with
// no times at all counts as always active and serves as the fallback.
func (s *CheckInService) ResolveActiveSlot(positionID uuid.UUID, explicitSlotID *uuid.UUID) (*SlotResponse, error) {
	if explicitSlotID != nil {
		slot, err := s.slotRepo.GetWithVolunteers(*explicitSlotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidSlot
			}
			return nil, fmt.Errorf("failed to get slot: %w", err)
		}
		return s.slots.toResponse(slot), nil
	}

	slot, err := s.slotRepo.GetActiveSlot(positionID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveSlot
		}
		return nil, fmt.Errorf("failed to resolve active slot: %w", err)
	}

	full, err := s.slotRepo.GetWithVolunteers(slot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot roster: %w", err)
	}

	return s.slots.toResponse(full), nil
}

// CheckIn marks the volunteer identified by email as present on the slot.
// Membership is required: a volunteer known globally but not assigned to
// this slot is rejected, which keeps walk-up self-registration out of this
// path. The transition itself is a single conditional write, so two racing
// attempts for the same identity collapse to one winner and the loser gets
// the already-checked-in reason.
func (s *CheckInService) CheckIn(slotID uuid.UUID, email, name string) error {
	if _, err := s.slotRepo.GetByID(slotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidSlot
		}
		return fmt.Errorf("failed to get slot: %w", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	volunteer, err := s.volunteerRepo.GetByEmail(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoRegistration
		}
		return fmt.Errorf("failed to look up volunteer: %w", err)
	}

	membership, err := s.rosterRepo.Get(slotID, volunteer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoRegistration
		}
		return fmt.Errorf("failed to look up registration: %w", err)
	}

	if membership.CheckedIn {
		return apperrors.ErrAlreadyCheckedIn
	}

	performed, err := s.rosterRepo.MarkCheckedIn(slotID, volunteer.ID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}
	if !performed {
		// Lost the race against a concurrent attempt for the same pair.
		return apperrors.ErrAlreadyCheckedIn
	}

	// Best effort: the check-in has taken effect and is not rolled back
	// if the name update fails.
	if name != "" {
		if err := s.volunteerRepo.UpdateName(volunteer.ID, name); err != nil {
			s.log.WithField("volunteer_id", volunteer.ID).WithError(err).
				Warn("check-in recorded but volunteer name update failed")
			return fmt.Errorf("failed to update volunteer name: %w", err)
		}
	}

	return nil
}

// SlotIsActive reports whether a slot's window contains the given instant.
// Unscheduled slots are always active.
func SlotIsActive(start, end *time.Time, now time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return schedule.NewRange(*start, *end).ContainsInstant(now)
}
