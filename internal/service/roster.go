package service

import (
	"fmt"
	"strings"

	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/repository"

	"github.com/google/uuid"
)

// RosterService maps volunteers onto slots by email identity. Assignment is
// additive: entries missing from a desired list are never removed, so a
// checked-in membership cannot be destroyed by a later slot edit.
type RosterService struct {
	volunteerRepo repository.VolunteerRepositoryInterface
	rosterRepo    repository.SlotVolunteerRepositoryInterface
}

// NewRosterService creates a new roster service
func NewRosterService(volunteerRepo repository.VolunteerRepositoryInterface, rosterRepo repository.SlotVolunteerRepositoryInterface) *RosterService {
	return &RosterService{
		volunteerRepo: volunteerRepo,
		rosterRepo:    rosterRepo,
	}
}

// RosterEntry is one desired roster member for a slot
type RosterEntry struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name,omitempty" validate:"max=100"`
}

// Reconcile ensures every entry of the desired list has a volunteer identity
// and a membership row on the slot. Emails are normalized to lower case and
// validated before any mutation; duplicates within one list collapse to one
// entry with the last name winning. Existing memberships are left untouched,
// so a prior check-in never regresses.
func (s *RosterService) Reconcile(slotID uuid.UUID, desired []RosterEntry) error {
	entries, err := normalizeRoster(desired)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		volunteer, err := s.volunteerRepo.FirstOrCreateByEmail(entry.Email, entry.Name)
		if err != nil {
			return fmt.Errorf("upsert volunteer %s: %w", entry.Email, err)
		}

		if _, err := s.rosterRepo.Ensure(slotID, volunteer.ID, entry.Name); err != nil {
			return fmt.Errorf("ensure membership for %s: %w", entry.Email, err)
		}
	}

	return nil
}

// Clear removes all memberships of a slot. The database cascade covers slot
// deletion too; clearing explicitly keeps the roster table consistent even
// when the schema was migrated without the constraint.
func (s *RosterService) Clear(slotID uuid.UUID) error {
	if err := s.rosterRepo.DeleteBySlotID(slotID); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}
	return nil
}

// normalizeRoster lower-cases emails, rejects invalid ones, and collapses
// duplicates preserving first-seen order. The last entry's name wins, even
// when it is empty.
func normalizeRoster(desired []RosterEntry) ([]RosterEntry, error) {
	seen := make(map[string]int, len(desired))
	entries := make([]RosterEntry, 0, len(desired))

	for _, entry := range desired {
		email := strings.ToLower(strings.TrimSpace(entry.Email))
		if !strings.Contains(email, "@") {
			return nil, apperrors.ErrInvalidEmail
		}

		if idx, ok := seen[email]; ok {
			entries[idx].Name = entry.Name
			continue
		}

		seen[email] = len(entries)
		entries = append(entries, RosterEntry{Email: email, Name: entry.Name})
	}

	return entries, nil
}
