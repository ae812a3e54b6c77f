package models

import (
	"time"

	"github.com/google/uuid"
)

// Position represents a time-bounded volunteer opportunity that subdivides
// into slots. Invariant: StartTime < EndTime.
type Position struct {
	BaseModel
	EventID          uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name             string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	StartTime        time.Time `json:"start_time" gorm:"not null" validate:"required"`
	EndTime          time.Time `json:"end_time" gorm:"not null" validate:"required"`
	VolunteersNeeded int       `json:"volunteers_needed" gorm:"not null;default:1" validate:"min=1"`

	// Relationships
	Event Event  `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Slots []Slot `json:"slots,omitempty" gorm:"foreignKey:PositionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
