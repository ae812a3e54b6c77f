package repository

import (
	"volunteer-checkin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerRepository handles database operations for volunteer identities.
// Identity is the lower-cased email; callers normalize before calling in.
type VolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create creates a new volunteer
func (r *VolunteerRepository) Create(volunteer *models.Volunteer) error {
	return r.db.Create(volunteer).Error
}

// GetByID retrieves a volunteer by ID
func (r *VolunteerRepository) GetByID(id uuid.UUID) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.First(&volunteer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// GetByEmail retrieves a volunteer by normalized email
func (r *VolunteerRepository) GetByEmail(email string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.First(&volunteer, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// FirstOrCreateByEmail returns the volunteer with the given email, creating
// one with the optional name when absent. An existing volunteer's stored
// name is left untouched; per-slot overrides live on the membership row.
func (r *VolunteerRepository) FirstOrCreateByEmail(email, name string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.Where(models.Volunteer{Email: email}).
		Attrs(models.Volunteer{Name: name}).
		FirstOrCreate(&volunteer).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// UpdateName updates a volunteer's display name
func (r *VolunteerRepository) UpdateName(id uuid.UUID, name string) error {
	return r.db.Model(&models.Volunteer{}).Where("id = ?", id).Update("name", name).Error
}
