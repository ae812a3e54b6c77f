package repository

import (
	"time"

	"volunteer-checkin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotRepository handles database operations for position slots
type SlotRepository struct {
	db *gorm.DB
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Create creates a new slot
func (r *SlotRepository) Create(slot *models.Slot) error {
	return r.db.Create(slot).Error
}

// GetByID retrieves a slot by ID
func (r *SlotRepository) GetByID(id uuid.UUID) (*models.Slot, error) {
	var slot models.Slot
	err := r.db.First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetWithVolunteers retrieves a slot with its roster and volunteer identities preloaded
func (r *SlotRepository) GetWithVolunteers(id uuid.UUID) (*models.Slot, error) {
	var slot models.Slot
	err := r.db.Preload("Volunteers.Volunteer").First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetByPositionID retrieves all slots for a position ordered by start time,
// with rosters preloaded for display
func (r *SlotRepository) GetByPositionID(positionID uuid.UUID) ([]models.Slot, error) {
	var slots []models.Slot
	err := r.db.Preload("Volunteers.Volunteer").
		Where("position_id = ?", positionID).
		Order("start_time ASC NULLS LAST").
		Find(&slots).Error
	return slots, err
}

// GetSiblingRanges retrieves the slots of a position that have both times
// set, optionally excluding one slot id (the candidate itself when editing).
// This is the snapshot the overlap check decides against.
func (r *SlotRepository) GetSiblingRanges(positionID uuid.UUID, excludeID *uuid.UUID) ([]models.Slot, error) {
	query := r.db.Where("position_id = ? AND start_time IS NOT NULL AND end_time IS NOT NULL", positionID)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var slots []models.Slot
	err := query.Find(&slots).Error
	return slots, err
}

// GetActiveSlot retrieves the slot of a position whose window contains now,
// bounds inclusive. When no timed slot matches, an unscheduled slot (no
// start or end) is returned as the always-active fallback.
func (r *SlotRepository) GetActiveSlot(positionID uuid.UUID, now time.Time) (*models.Slot, error) {
	var slot models.Slot
	err := r.db.Where("position_id = ? AND start_time <= ? AND end_time >= ?", positionID, now, now).
		First(&slot).Error
	if err == nil {
		return &slot, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	err = r.db.Where("position_id = ? AND start_time IS NULL AND end_time IS NULL", positionID).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// Update updates a slot
func (r *SlotRepository) Update(slot *models.Slot) error {
	return r.db.Save(slot).Error
}

// Delete deletes a slot and, through cascade, its roster rows. Deleting
// simply removes it from the sibling set of future overlap checks.
func (r *SlotRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Slot{}, "id = ?", id).Error
}
