package repository

import (
	"time"

	"volunteer-checkin-backend/internal/database/models"

	"github.com/google/uuid"
)

// Interfaces over the concrete repositories. Services depend on these so
// tests can substitute in-memory fakes.

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetWithPositions(id uuid.UUID) (*models.Event, error)
	GetAll(limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// PositionRepositoryInterface defines the interface for position repository operations
type PositionRepositoryInterface interface {
	Create(position *models.Position) error
	GetByID(id uuid.UUID) (*models.Position, error)
	GetByEventID(eventID uuid.UUID, limit, offset int) ([]models.Position, int64, error)
	Update(position *models.Position) error
	Delete(id uuid.UUID) error
}

// SlotRepositoryInterface defines the interface for slot repository operations
type SlotRepositoryInterface interface {
	Create(slot *models.Slot) error
	GetByID(id uuid.UUID) (*models.Slot, error)
	GetWithVolunteers(id uuid.UUID) (*models.Slot, error)
	GetByPositionID(positionID uuid.UUID) ([]models.Slot, error)
	GetSiblingRanges(positionID uuid.UUID, excludeID *uuid.UUID) ([]models.Slot, error)
	GetActiveSlot(positionID uuid.UUID, now time.Time) (*models.Slot, error)
	Update(slot *models.Slot) error
	Delete(id uuid.UUID) error
}

// VolunteerRepositoryInterface defines the interface for volunteer repository operations
type VolunteerRepositoryInterface interface {
	Create(volunteer *models.Volunteer) error
	GetByID(id uuid.UUID) (*models.Volunteer, error)
	GetByEmail(email string) (*models.Volunteer, error)
	FirstOrCreateByEmail(email, name string) (*models.Volunteer, error)
	UpdateName(id uuid.UUID, name string) error
}

// SlotVolunteerRepositoryInterface defines the interface for roster membership operations
type SlotVolunteerRepositoryInterface interface {
	Get(slotID, volunteerID uuid.UUID) (*models.SlotVolunteer, error)
	GetBySlotID(slotID uuid.UUID) ([]models.SlotVolunteer, error)
	Ensure(slotID, volunteerID uuid.UUID, name string) (*models.SlotVolunteer, error)
	MarkCheckedIn(slotID, volunteerID uuid.UUID, now time.Time) (bool, error)
	DeleteBySlotID(slotID uuid.UUID) error
}
