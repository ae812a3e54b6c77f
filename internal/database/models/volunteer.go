package models

// Volunteer represents a volunteer identity. Identity is the lower-cased
// email, not the generated id; callers normalize before lookup or storage.
// Created lazily on first roster assignment and never deleted by the core.
type Volunteer struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name  string `json:"name,omitempty" gorm:"size:100" validate:"max=100"`

	// Relationships
	Memberships []SlotVolunteer `json:"memberships,omitempty" gorm:"foreignKey:VolunteerID"`
}

// TableName returns the table name for Volunteer
func (Volunteer) TableName() string {
	return "volunteers"
}
