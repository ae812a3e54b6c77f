package models

import "time"

// Event represents a volunteer event that owns positions
type Event struct {
	BaseModel
	Name        string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	Date        time.Time `json:"date" gorm:"not null" validate:"required"`

	// Relationships
	Positions []Position `json:"positions,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
