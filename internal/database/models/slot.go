package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot represents a sub-interval of a position with its own capacity and
// roster. Both times may be nil: an unscheduled slot is always active and
// bypasses overlap checking. When both are set, StartTime < EndTime and the
// range lies inside the parent position's window without overlapping any
// sibling slot.
type Slot struct {
	BaseModel
	PositionID uuid.UUID  `json:"position_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	Capacity   int        `json:"capacity" gorm:"not null;default:1" validate:"min=1"`

	// Relationships
	Position   Position        `json:"position,omitempty" gorm:"foreignKey:PositionID;constraint:OnDelete:CASCADE"`
	Volunteers []SlotVolunteer `json:"volunteers,omitempty" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Slot
func (Slot) TableName() string {
	return "position_slots"
}

// IsScheduled reports whether the slot has a concrete time window
func (s *Slot) IsScheduled() bool {
	return s.StartTime != nil && s.EndTime != nil
}

// CheckedInCount returns the number of roster members already checked in.
// Requires Volunteers to be preloaded.
func (s *Slot) CheckedInCount() int {
	count := 0
	for _, v := range s.Volunteers {
		if v.CheckedIn {
			count++
		}
	}
	return count
}
