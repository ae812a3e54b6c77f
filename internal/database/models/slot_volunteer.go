package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotVolunteer represents the roster membership of a volunteer on a slot.
// CheckedIn transitions false to true exactly once; CheckInTime is set iff
// CheckedIn is true. Rows are cascade-deleted with their slot.
type SlotVolunteer struct {
	BaseModel
	SlotID      uuid.UUID  `json:"slot_id" gorm:"type:uuid;not null;uniqueIndex:idx_slot_volunteer;index" validate:"required"`
	VolunteerID uuid.UUID  `json:"volunteer_id" gorm:"type:uuid;not null;uniqueIndex:idx_slot_volunteer" validate:"required"`
	Name        string     `json:"name,omitempty" gorm:"size:100"` // per-slot display name override
	CheckedIn   bool       `json:"checked_in" gorm:"not null;default:false"`
	CheckInTime *time.Time `json:"check_in_time,omitempty"`

	// Relationships
	Slot      Slot      `json:"slot,omitempty" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
	Volunteer Volunteer `json:"volunteer,omitempty" gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SlotVolunteer
func (SlotVolunteer) TableName() string {
	return "slot_volunteers"
}
