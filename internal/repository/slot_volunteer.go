package repository

import (
	"time"

	"volunteer-checkin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotVolunteerRepository handles database operations for roster memberships
type SlotVolunteerRepository struct {
	db *gorm.DB
}

// NewSlotVolunteerRepository creates a new slot volunteer repository
func NewSlotVolunteerRepository(db *gorm.DB) *SlotVolunteerRepository {
	return &SlotVolunteerRepository{db: db}
}

// Get retrieves the membership row for a (slot, volunteer) pair
func (r *SlotVolunteerRepository) Get(slotID, volunteerID uuid.UUID) (*models.SlotVolunteer, error) {
	var membership models.SlotVolunteer
	err := r.db.First(&membership, "slot_id = ? AND volunteer_id = ?", slotID, volunteerID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetBySlotID retrieves all memberships of a slot with volunteer identities preloaded
func (r *SlotVolunteerRepository) GetBySlotID(slotID uuid.UUID) ([]models.SlotVolunteer, error) {
	var memberships []models.SlotVolunteer
	err := r.db.Preload("Volunteer").Where("slot_id = ?", slotID).Find(&memberships).Error
	return memberships, err
}

// Ensure creates the membership row for a (slot, volunteer) pair when it does
// not exist yet. An existing row is returned as-is: its checked_in state and
// check_in_time are never touched here.
func (r *SlotVolunteerRepository) Ensure(slotID, volunteerID uuid.UUID, name string) (*models.SlotVolunteer, error) {
	var membership models.SlotVolunteer
	err := r.db.Where(models.SlotVolunteer{SlotID: slotID, VolunteerID: volunteerID}).
		Attrs(models.SlotVolunteer{Name: name}).
		FirstOrCreate(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// MarkCheckedIn performs the one-way check-in transition as a single
// conditional update scoped to the exact (slot, volunteer) pair. It returns
// true when this call performed the transition and false when the row was
// already checked in, which is how two racing check-in attempts for the
// same identity collapse to one winner.
func (r *SlotVolunteerRepository) MarkCheckedIn(slotID, volunteerID uuid.UUID, now time.Time) (bool, error) {
	result := r.db.Model(&models.SlotVolunteer{}).
		Where("slot_id = ? AND volunteer_id = ? AND checked_in = ?", slotID, volunteerID, false).
		Updates(map[string]interface{}{
			"checked_in":    true,
			"check_in_time": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteBySlotID removes all memberships of a slot. Normally the database
// cascade handles this; the method exists for explicit cleanup paths.
func (r *SlotVolunteerRepository) DeleteBySlotID(slotID uuid.UUID) error {
	return r.db.Delete(&models.SlotVolunteer{}, "slot_id = ?", slotID).Error
}
