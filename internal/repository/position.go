package repository

import (
	"volunteer-checkin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByEventID retrieves all positions for an event with pagination
func (r *PositionRepository) GetByEventID(eventID uuid.UUID, limit, offset int) ([]models.Position, int64, error) {
	var positions []models.Position
	var total int64

	if err := r.db.Model(&models.Position{}).Where("event_id = ?", eventID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("event_id = ?", eventID).Order("start_time ASC").Limit(limit).Offset(offset).Find(&positions).Error
	return positions, total, err
}

// Update updates a position
func (r *PositionRepository) Update(position *models.Position) error {
	return r.db.Save(position).Error
}

// Delete deletes a position and, through cascade, its slots
func (r *PositionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Position{}, "id = ?", id).Error
}
