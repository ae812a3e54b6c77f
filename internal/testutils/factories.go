package testutils

import (
	"time"

	"volunteer-checkin-backend/internal/database/models"

	"github.com/google/uuid"
)

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Spring Fair",
		Description: "A test event",
		Date:        time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
	}
}

// WithName sets a custom name for the event
func (f *EventFactory) WithName(name string) *models.Event {
	event := f.Create()
	event.Name = name
	return event
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a test Position spanning 09:00 to 17:00 under the event
func (f *PositionFactory) Create(eventID uuid.UUID) *models.Position {
	return &models.Position{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:          eventID,
		Name:             "Registration Desk",
		StartTime:        time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2025, time.June, 14, 17, 0, 0, 0, time.UTC),
		VolunteersNeeded: 2,
	}
}

// WithWindow sets a custom time window for the position
func (f *PositionFactory) WithWindow(eventID uuid.UUID, start, end time.Time) *models.Position {
	position := f.Create(eventID)
	position.StartTime = start
	position.EndTime = end
	return position
}

// SlotFactory provides methods to create test Slot data
type SlotFactory struct{}

// NewSlotFactory creates a new SlotFactory
func NewSlotFactory() *SlotFactory {
	return &SlotFactory{}
}

// Create creates a scheduled test Slot under the position
func (f *SlotFactory) Create(positionID uuid.UUID, start, end time.Time) *models.Slot {
	return &models.Slot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PositionID: positionID,
		StartTime:  &start,
		EndTime:    &end,
		Capacity:   2,
	}
}

// Unscheduled creates a slot without times under the position
func (f *SlotFactory) Unscheduled(positionID uuid.UUID) *models.Slot {
	return &models.Slot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PositionID: positionID,
		Capacity:   2,
	}
}

// VolunteerFactory provides methods to create test Volunteer data
type VolunteerFactory struct{}

// NewVolunteerFactory creates a new VolunteerFactory
func NewVolunteerFactory() *VolunteerFactory {
	return &VolunteerFactory{}
}

// Create creates a test Volunteer with a unique email
func (f *VolunteerFactory) Create() *models.Volunteer {
	id := uuid.New()
	return &models.Volunteer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: "volunteer-" + id.String()[:8] + "@test.com",
		Name:  "Test Volunteer",
	}
}

// WithEmail sets a custom email for the volunteer
func (f *VolunteerFactory) WithEmail(email string) *models.Volunteer {
	volunteer := f.Create()
	volunteer.Email = email
	return volunteer
}

// SlotVolunteerFactory provides methods to create test roster memberships
type SlotVolunteerFactory struct{}

// NewSlotVolunteerFactory creates a new SlotVolunteerFactory
func NewSlotVolunteerFactory() *SlotVolunteerFactory {
	return &SlotVolunteerFactory{}
}

// Create creates a not-yet-checked-in membership
func (f *SlotVolunteerFactory) Create(slotID, volunteerID uuid.UUID) *models.SlotVolunteer {
	return &models.SlotVolunteer{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SlotID:      slotID,
		VolunteerID: volunteerID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Event         *EventFactory
	Position      *PositionFactory
	Slot          *SlotFactory
	Volunteer     *VolunteerFactory
	SlotVolunteer *SlotVolunteerFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Event:         NewEventFactory(),
		Position:      NewPositionFactory(),
		Slot:          NewSlotFactory(),
		Volunteer:     NewVolunteerFactory(),
		SlotVolunteer: NewSlotVolunteerFactory(),
	}
}
