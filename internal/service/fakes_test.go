package service_test

import (
	"errors"
	"sort"
	"time"

	"volunteer-checkin-backend/internal/database/models"
	"volunteer-checkin-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes over the repository interfaces. They share one store so a
// scheduler fake and a roster fake observe each other's writes, the way the
// real repositories share one database.

type fakeStore struct {
	events      map[uuid.UUID]*models.Event
	positions   map[uuid.UUID]*models.Position
	slots       map[uuid.UUID]*models.Slot
	volunteers  map[uuid.UUID]*models.Volunteer
	memberships map[string]*models.SlotVolunteer

	failUpdateName bool
	staleReads     bool
	markCalls      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:      make(map[uuid.UUID]*models.Event),
		positions:   make(map[uuid.UUID]*models.Position),
		slots:       make(map[uuid.UUID]*models.Slot),
		volunteers:  make(map[uuid.UUID]*models.Volunteer),
		memberships: make(map[string]*models.SlotVolunteer),
	}
}

func membershipKey(slotID, volunteerID uuid.UUID) string {
	return slotID.String() + "|" + volunteerID.String()
}

func (s *fakeStore) addEvent(name string, date time.Time) *models.Event {
	event := &models.Event{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		Name:      name,
		Date:      date,
	}
	s.events[event.ID] = event
	return event
}

func (s *fakeStore) addPosition(start, end time.Time) *models.Position {
	position := &models.Position{
		BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		EventID:          uuid.New(),
		Name:             "Registration Desk",
		StartTime:        start,
		EndTime:          end,
		VolunteersNeeded: 2,
	}
	s.positions[position.ID] = position
	return position
}

func (s *fakeStore) addSlot(positionID uuid.UUID, start, end *time.Time) *models.Slot {
	slot := &models.Slot{
		BaseModel:  models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		PositionID: positionID,
		StartTime:  start,
		EndTime:    end,
		Capacity:   1,
	}
	s.slots[slot.ID] = slot
	return slot
}

func (s *fakeStore) addVolunteer(email, name string) *models.Volunteer {
	volunteer := &models.Volunteer{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		Email:     email,
		Name:      name,
	}
	s.volunteers[volunteer.ID] = volunteer
	return volunteer
}

func (s *fakeStore) addMembership(slotID, volunteerID uuid.UUID) *models.SlotVolunteer {
	membership := &models.SlotVolunteer{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		SlotID:      slotID,
		VolunteerID: volunteerID,
	}
	s.memberships[membershipKey(slotID, volunteerID)] = membership
	return membership
}

// ------------------------------
// Event repository fake
// ------------------------------

type fakeEventRepo struct{ store *fakeStore }

func (f *fakeEventRepo) Create(event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	f.store.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(id uuid.UUID) (*models.Event, error) {
	event, ok := f.store.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) GetWithPositions(id uuid.UUID) (*models.Event, error) {
	event, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, position := range f.store.positions {
		if position.EventID == id {
			event.Positions = append(event.Positions, *position)
		}
	}
	sort.Slice(event.Positions, func(i, j int) bool {
		return event.Positions[i].StartTime.Before(event.Positions[j].StartTime)
	})
	return event, nil
}

func (f *fakeEventRepo) GetAll(limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	for _, event := range f.store.events {
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	total := int64(len(events))
	if offset >= len(events) {
		return nil, total, nil
	}
	events = events[offset:]
	if limit < len(events) {
		events = events[:limit]
	}
	return events, total, nil
}

func (f *fakeEventRepo) Update(event *models.Event) error {
	f.store.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Delete(id uuid.UUID) error {
	delete(f.store.events, id)
	return nil
}

// ------------------------------
// Position repository fake
// ------------------------------

type fakePositionRepo struct{ store *fakeStore }

func (f *fakePositionRepo) Create(position *models.Position) error {
	if position.ID == uuid.Nil {
		position.ID = uuid.New()
	}
	position.CreatedAt = time.Now()
	f.store.positions[position.ID] = position
	return nil
}

func (f *fakePositionRepo) GetByID(id uuid.UUID) (*models.Position, error) {
	position, ok := f.store.positions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *position
	return &copied, nil
}

func (f *fakePositionRepo) GetByEventID(eventID uuid.UUID, limit, offset int) ([]models.Position, int64, error) {
	var positions []models.Position
	for _, position := range f.store.positions {
		if position.EventID == eventID {
			positions = append(positions, *position)
		}
	}
	return positions, int64(len(positions)), nil
}

func (f *fakePositionRepo) Update(position *models.Position) error {
	f.store.positions[position.ID] = position
	return nil
}

func (f *fakePositionRepo) Delete(id uuid.UUID) error {
	delete(f.store.positions, id)
	return nil
}

// ------------------------------
// Slot repository fake
// ------------------------------

type fakeSlotRepo struct{ store *fakeStore }

func (f *fakeSlotRepo) Create(slot *models.Slot) error {
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	slot.CreatedAt = time.Now()
	copied := *slot
	f.store.slots[slot.ID] = &copied
	return nil
}

func (f *fakeSlotRepo) GetByID(id uuid.UUID) (*models.Slot, error) {
	slot, ok := f.store.slots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepo) GetWithVolunteers(id uuid.UUID) (*models.Slot, error) {
	slot, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, membership := range f.store.memberships {
		if membership.SlotID != id {
			continue
		}
		loaded := *membership
		if volunteer, ok := f.store.volunteers[membership.VolunteerID]; ok {
			loaded.Volunteer = *volunteer
		}
		slot.Volunteers = append(slot.Volunteers, loaded)
	}
	return slot, nil
}

func (f *fakeSlotRepo) GetByPositionID(positionID uuid.UUID) ([]models.Slot, error) {
	var slots []models.Slot
	for id, slot := range f.store.slots {
		if slot.PositionID != positionID {
			continue
		}
		loaded, err := f.GetWithVolunteers(id)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *loaded)
	}
	return slots, nil
}

func (f *fakeSlotRepo) GetSiblingRanges(positionID uuid.UUID, excludeID *uuid.UUID) ([]models.Slot, error) {
	var slots []models.Slot
	for _, slot := range f.store.slots {
		if slot.PositionID != positionID {
			continue
		}
		if excludeID != nil && slot.ID == *excludeID {
			continue
		}
		if slot.StartTime == nil || slot.EndTime == nil {
			continue
		}
		slots = append(slots, *slot)
	}
	return slots, nil
}

func (f *fakeSlotRepo) GetActiveSlot(positionID uuid.UUID, now time.Time) (*models.Slot, error) {
	for _, slot := range f.store.slots {
		if slot.PositionID != positionID || slot.StartTime == nil || slot.EndTime == nil {
			continue
		}
		if !now.Before(*slot.StartTime) && !now.After(*slot.EndTime) {
			copied := *slot
			return &copied, nil
		}
	}
	for _, slot := range f.store.slots {
		if slot.PositionID == positionID && slot.StartTime == nil && slot.EndTime == nil {
			copied := *slot
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSlotRepo) Update(slot *models.Slot) error {
	if _, ok := f.store.slots[slot.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *slot
	copied.Volunteers = nil
	f.store.slots[slot.ID] = &copied
	return nil
}

func (f *fakeSlotRepo) Delete(id uuid.UUID) error {
	delete(f.store.slots, id)
	for key, membership := range f.store.memberships {
		if membership.SlotID == id {
			delete(f.store.memberships, key)
		}
	}
	return nil
}

// ------------------------------
// Volunteer repository fake
// ------------------------------

type fakeVolunteerRepo struct{ store *fakeStore }

func (f *fakeVolunteerRepo) Create(volunteer *models.Volunteer) error {
	if volunteer.ID == uuid.Nil {
		volunteer.ID = uuid.New()
	}
	volunteer.CreatedAt = time.Now()
	f.store.volunteers[volunteer.ID] = volunteer
	return nil
}

func (f *fakeVolunteerRepo) GetByID(id uuid.UUID) (*models.Volunteer, error) {
	volunteer, ok := f.store.volunteers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *volunteer
	return &copied, nil
}

func (f *fakeVolunteerRepo) GetByEmail(email string) (*models.Volunteer, error) {
	for _, volunteer := range f.store.volunteers {
		if volunteer.Email == email {
			copied := *volunteer
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVolunteerRepo) FirstOrCreateByEmail(email, name string) (*models.Volunteer, error) {
	if existing, err := f.GetByEmail(email); err == nil {
		return existing, nil
	}
	volunteer := &models.Volunteer{Email: email, Name: name}
	if err := f.Create(volunteer); err != nil {
		return nil, err
	}
	copied := *volunteer
	return &copied, nil
}

func (f *fakeVolunteerRepo) UpdateName(id uuid.UUID, name string) error {
	if f.store.failUpdateName {
		return errors.New("connection reset by peer")
	}
	volunteer, ok := f.store.volunteers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	volunteer.Name = name
	return nil
}

// ------------------------------
// Roster membership repository fake
// ------------------------------

type fakeRosterRepo struct{ store *fakeStore }

func (f *fakeRosterRepo) Get(slotID, volunteerID uuid.UUID) (*models.SlotVolunteer, error) {
	membership, ok := f.store.memberships[membershipKey(slotID, volunteerID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *membership
	if f.store.staleReads {
		// Simulates a concurrent writer landing between this read and the
		// conditional update: the row reads as not checked in, but the
		// write will find it already flipped.
		copied.CheckedIn = false
		copied.CheckInTime = nil
	}
	return &copied, nil
}

func (f *fakeRosterRepo) GetBySlotID(slotID uuid.UUID) ([]models.SlotVolunteer, error) {
	var memberships []models.SlotVolunteer
	for _, membership := range f.store.memberships {
		if membership.SlotID == slotID {
			memberships = append(memberships, *membership)
		}
	}
	return memberships, nil
}

func (f *fakeRosterRepo) Ensure(slotID, volunteerID uuid.UUID, name string) (*models.SlotVolunteer, error) {
	key := membershipKey(slotID, volunteerID)
	if existing, ok := f.store.memberships[key]; ok {
		copied := *existing
		return &copied, nil
	}
	membership := &models.SlotVolunteer{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		SlotID:      slotID,
		VolunteerID: volunteerID,
		Name:        name,
	}
	f.store.memberships[key] = membership
	copied := *membership
	return &copied, nil
}

func (f *fakeRosterRepo) MarkCheckedIn(slotID, volunteerID uuid.UUID, now time.Time) (bool, error) {
	f.store.markCalls++
	membership, ok := f.store.memberships[membershipKey(slotID, volunteerID)]
	if !ok || membership.CheckedIn {
		return false, nil
	}
	membership.CheckedIn = true
	membership.CheckInTime = &now
	return true, nil
}

func (f *fakeRosterRepo) DeleteBySlotID(slotID uuid.UUID) error {
	for key, membership := range f.store.memberships {
		if membership.SlotID == slotID {
			delete(f.store.memberships, key)
		}
	}
	return nil
}

// sanity check that the fakes satisfy the repository interfaces
var (
	_ repository.EventRepositoryInterface         = (*fakeEventRepo)(nil)
	_ repository.PositionRepositoryInterface      = (*fakePositionRepo)(nil)
	_ repository.SlotRepositoryInterface          = (*fakeSlotRepo)(nil)
	_ repository.VolunteerRepositoryInterface     = (*fakeVolunteerRepo)(nil)
	_ repository.SlotVolunteerRepositoryInterface = (*fakeRosterRepo)(nil)
)
