package service_test

import (
	"testing"
	"time"

	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CheckInServiceTestSuite defines the test suite for CheckInService
type CheckInServiceTestSuite struct {
	suite.Suite
	store   *fakeStore
	service *service.CheckInService
}

func (suite *CheckInServiceTestSuite) SetupTest() {
	suite.store = newFakeStore()
	slotRepo := &fakeSlotRepo{store: suite.store}
	volunteerRepo := &fakeVolunteerRepo{store: suite.store}
	rosterRepo := &fakeRosterRepo{store: suite.store}
	roster := service.NewRosterService(volunteerRepo, rosterRepo)
	slots := service.NewSlotService(slotRepo, &fakePositionRepo{store: suite.store}, roster, validator.New())
	suite.service = service.NewCheckInService(slotRepo, volunteerRepo, rosterRepo, slots)
}

// registeredSlot creates a slot around now with one registered volunteer
func (suite *CheckInServiceTestSuite) registeredSlot(email string) (slotID, volunteerID uuid.UUID) {
	now := time.Now().UTC()
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)
	position := suite.store.addPosition(start.Add(-time.Hour), end.Add(time.Hour))
	slot := suite.store.addSlot(position.ID, &start, &end)
	volunteer := suite.store.addVolunteer(email, "")
	suite.store.addMembership(slot.ID, volunteer.ID)
	return slot.ID, volunteer.ID
}

func (suite *CheckInServiceTestSuite) TestCheckInHappyPath() {
	slotID, volunteerID := suite.registeredSlot("a@x.com")

	err := suite.service.CheckIn(slotID, "A@X.com", "Ann")
	suite.Require().NoError(err)

	membership, err := (&fakeRosterRepo{store: suite.store}).Get(slotID, volunteerID)
	suite.Require().NoError(err)
	suite.True(membership.CheckedIn)
	suite.NotNil(membership.CheckInTime)

	// Non-empty name updates the volunteer's display name
	volunteer, err := (&fakeVolunteerRepo{store: suite.store}).GetByID(volunteerID)
	suite.Require().NoError(err)
	suite.Equal("Ann", volunteer.Name)
}

func (suite *CheckInServiceTestSuite) TestCheckInTwiceFailsSecondTime() {
	slotID, _ := suite.registeredSlot("a@x.com")

	suite.Require().NoError(suite.service.CheckIn(slotID, "A@X.com", "Ann"))

	err := suite.service.CheckIn(slotID, "a@x.com", "Ann")
	suite.ErrorIs(err, apperrors.ErrAlreadyCheckedIn)
}

func (suite *CheckInServiceTestSuite) TestCheckInUnknownSlot() {
	err := suite.service.CheckIn(uuid.New(), "a@x.com", "")
	suite.ErrorIs(err, apperrors.ErrInvalidSlot)
}

func (suite *CheckInServiceTestSuite) TestCheckInUnknownEmail() {
	slotID, _ := suite.registeredSlot("a@x.com")

	err := suite.service.CheckIn(slotID, "stranger@x.com", "")
	suite.ErrorIs(err, apperrors.ErrNoRegistration)
}

func (suite *CheckInServiceTestSuite) TestCheckInRequiresMembershipOnThisSlot() {
	slotID, _ := suite.registeredSlot("a@x.com")

	// A volunteer registered elsewhere but not on this slot is rejected
	// with the same reason as an unknown email.
	other := suite.store.addVolunteer("b@x.com", "Bea")
	otherPosition := suite.store.addPosition(time.Now().Add(-2*time.Hour), time.Now().Add(2*time.Hour))
	otherSlot := suite.store.addSlot(otherPosition.ID, nil, nil)
	suite.store.addMembership(otherSlot.ID, other.ID)

	err := suite.service.CheckIn(slotID, "b@x.com", "")
	suite.ErrorIs(err, apperrors.ErrNoRegistration)
}

func (suite *CheckInServiceTestSuite) TestCheckInRaceCollapsesToOneWinner() {
	slotID, volunteerID := suite.registeredSlot("a@x.com")

	// The losing side of a race: a concurrent attempt flips the row after
	// this one's read but before its conditional write.
	performed, err := (&fakeRosterRepo{store: suite.store}).MarkCheckedIn(slotID, volunteerID, time.Now())
	suite.Require().NoError(err)
	suite.Require().True(performed)
	suite.store.staleReads = true

	before := suite.store.markCalls
	err = suite.service.CheckIn(slotID, "a@x.com", "")
	suite.ErrorIs(err, apperrors.ErrAlreadyCheckedIn)
	// The loser reached the conditional write and was turned away there
	suite.Equal(before+1, suite.store.markCalls)
}

func (suite *CheckInServiceTestSuite) TestCheckInEmptyNameSkipsNameUpdate() {
	slotID, volunteerID := suite.registeredSlot("a@x.com")
	volunteer := suite.store.volunteers[volunteerID]
	volunteer.Name = "Existing"

	suite.Require().NoError(suite.service.CheckIn(slotID, "a@x.com", ""))
	suite.Equal("Existing", suite.store.volunteers[volunteerID].Name)
}

func (suite *CheckInServiceTestSuite) TestCheckInSurvivesNameUpdateFailure() {
	slotID, volunteerID := suite.registeredSlot("a@x.com")
	suite.store.failUpdateName = true

	err := suite.service.CheckIn(slotID, "a@x.com", "Ann")
	// The failure is surfaced as an operational error...
	suite.Error(err)
	suite.False(apperrors.IsValidation(err))

	// ...but the check-in itself stands.
	membership, getErr := (&fakeRosterRepo{store: suite.store}).Get(slotID, volunteerID)
	suite.Require().NoError(getErr)
	suite.True(membership.CheckedIn)
}

func (suite *CheckInServiceTestSuite) TestResolveActiveSlotExplicitID() {
	slotID, _ := suite.registeredSlot("a@x.com")

	resp, err := suite.service.ResolveActiveSlot(uuid.New(), &slotID)
	suite.Require().NoError(err)
	suite.Equal(slotID, resp.ID)
	suite.Len(resp.Volunteers, 1)
}

func (suite *CheckInServiceTestSuite) TestResolveActiveSlotExplicitIDUnknown() {
	missing := uuid.New()
	_, err := suite.service.ResolveActiveSlot(uuid.New(), &missing)
	suite.ErrorIs(err, apperrors.ErrInvalidSlot)
}

func (suite *CheckInServiceTestSuite) TestResolveActiveSlotByWindow() {
	now := time.Now().UTC()
	position := suite.store.addPosition(now.Add(-4*time.Hour), now.Add(4*time.Hour))

	past := suite.store.addSlot(position.ID, timePtr(now.Add(-3*time.Hour)), timePtr(now.Add(-2*time.Hour)))
	active := suite.store.addSlot(position.ID, timePtr(now.Add(-time.Hour)), timePtr(now.Add(time.Hour)))

	resp, err := suite.service.ResolveActiveSlot(position.ID, nil)
	suite.Require().NoError(err)
	suite.Equal(active.ID, resp.ID)
	suite.NotEqual(past.ID, resp.ID)
}

func (suite *CheckInServiceTestSuite) TestResolveActiveSlotFallsBackToUnscheduled() {
	now := time.Now().UTC()
	position := suite.store.addPosition(now.Add(-4*time.Hour), now.Add(4*time.Hour))

	suite.store.addSlot(position.ID, timePtr(now.Add(-3*time.Hour)), timePtr(now.Add(-2*time.Hour)))
	unscheduled := suite.store.addSlot(position.ID, nil, nil)

	resp, err := suite.service.ResolveActiveSlot(position.ID, nil)
	suite.Require().NoError(err)
	suite.Equal(unscheduled.ID, resp.ID)
}

func (suite *CheckInServiceTestSuite) TestResolveActiveSlotNoneActive() {
	now := time.Now().UTC()
	position := suite.store.addPosition(now.Add(-4*time.Hour), now.Add(4*time.Hour))
	suite.store.addSlot(position.ID, timePtr(now.Add(-3*time.Hour)), timePtr(now.Add(-2*time.Hour)))

	_, err := suite.service.ResolveActiveSlot(position.ID, nil)
	suite.ErrorIs(err, apperrors.ErrNoActiveSlot)
}

func TestSlotIsActive(t *testing.T) {
	now := time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	if !service.SlotIsActive(&start, &end, now) {
		t.Error("expected slot containing now to be active")
	}
	if !service.SlotIsActive(nil, nil, now) {
		t.Error("expected unscheduled slot to be always active")
	}
	if service.SlotIsActive(&start, &end, end.Add(time.Minute)) {
		t.Error("expected slot to be inactive after its end")
	}
	// Bounds are inclusive
	if !service.SlotIsActive(&start, &end, end) {
		t.Error("expected slot to be active at its end instant")
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCheckInServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckInServiceTestSuite))
}
