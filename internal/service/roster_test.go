package service_test

import (
	"testing"
	"time"

	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

// RosterServiceTestSuite defines the test suite for RosterService
type RosterServiceTestSuite struct {
	suite.Suite
	store   *fakeStore
	service *service.RosterService
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.store = newFakeStore()
	suite.service = service.NewRosterService(
		&fakeVolunteerRepo{store: suite.store},
		&fakeRosterRepo{store: suite.store},
	)
}

func (suite *RosterServiceTestSuite) TestReconcileCreatesIdentitiesAndMemberships() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)

	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "Ann@Example.com", Name: "Ann"},
		{Email: "bob@example.com"},
	})

	suite.Require().NoError(err)
	suite.Len(suite.store.volunteers, 2)
	suite.Len(suite.store.memberships, 2)

	ann, err := (&fakeVolunteerRepo{store: suite.store}).GetByEmail("ann@example.com")
	suite.Require().NoError(err)
	suite.Equal("Ann", ann.Name)
}

func (suite *RosterServiceTestSuite) TestReconcileInvalidEmailRejectedBeforeMutation() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)

	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "good@example.com"},
		{Email: "missing-at-sign"},
	})

	suite.ErrorIs(err, apperrors.ErrInvalidEmail)
	// Nothing was written, not even the valid entry listed first
	suite.Empty(suite.store.volunteers)
	suite.Empty(suite.store.memberships)
}

func (suite *RosterServiceTestSuite) TestReconcileCollapsesDuplicates() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)

	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "ann@example.com", Name: "Ann"},
		{Email: "ANN@example.com", Name: "Annie"},
	})

	suite.Require().NoError(err)
	suite.Len(suite.store.volunteers, 1)
	suite.Len(suite.store.memberships, 1)

	// Last write for the name wins, without error
	ann, err := (&fakeVolunteerRepo{store: suite.store}).GetByEmail("ann@example.com")
	suite.Require().NoError(err)
	suite.Equal("Annie", ann.Name)
}

func (suite *RosterServiceTestSuite) TestReconcileDuplicateEmptyNameWins() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)

	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "ann@example.com", Name: "Ann"},
		{Email: "ann@example.com"},
	})

	suite.Require().NoError(err)
	suite.Len(suite.store.volunteers, 1)

	// The later duplicate carried no name, and the later write wins
	ann, err := (&fakeVolunteerRepo{store: suite.store}).GetByEmail("ann@example.com")
	suite.Require().NoError(err)
	suite.Equal("", ann.Name)

	membership, err := (&fakeRosterRepo{store: suite.store}).Get(slot.ID, ann.ID)
	suite.Require().NoError(err)
	suite.Equal("", membership.Name)
}

func (suite *RosterServiceTestSuite) TestReconcileLeavesExistingNameAlone() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)
	suite.store.addVolunteer("ann@example.com", "Ann")

	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "ann@example.com", Name: "Somebody Else"},
	})

	suite.Require().NoError(err)
	ann, err := (&fakeVolunteerRepo{store: suite.store}).GetByEmail("ann@example.com")
	suite.Require().NoError(err)
	// Stored identity name untouched; the override lives on the membership
	suite.Equal("Ann", ann.Name)

	membership, err := (&fakeRosterRepo{store: suite.store}).Get(slot.ID, ann.ID)
	suite.Require().NoError(err)
	suite.Equal("Somebody Else", membership.Name)
}

func (suite *RosterServiceTestSuite) TestReconcileNeverRegressesCheckIn() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)
	volunteer := suite.store.addVolunteer("ann@example.com", "Ann")
	membership := suite.store.addMembership(slot.ID, volunteer.ID)
	membership.CheckedIn = true
	now := time.Now()
	membership.CheckInTime = &now

	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "ann@example.com", Name: "Ann"},
	})

	suite.Require().NoError(err)
	reloaded, err := (&fakeRosterRepo{store: suite.store}).Get(slot.ID, volunteer.ID)
	suite.Require().NoError(err)
	suite.True(reloaded.CheckedIn)
	suite.NotNil(reloaded.CheckInTime)
}

func (suite *RosterServiceTestSuite) TestReconcileIsAdditive() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)
	volunteer := suite.store.addVolunteer("ann@example.com", "Ann")
	suite.store.addMembership(slot.ID, volunteer.ID)

	// Ann is absent from the new desired list; her membership survives
	err := suite.service.Reconcile(slot.ID, []service.RosterEntry{
		{Email: "bob@example.com", Name: "Bob"},
	})

	suite.Require().NoError(err)
	suite.Len(suite.store.memberships, 2)
}

func (suite *RosterServiceTestSuite) TestReconcileEmptyListIsNoOp() {
	position := suite.store.addPosition(time.Now(), time.Now().Add(8*time.Hour))
	slot := suite.store.addSlot(position.ID, nil, nil)

	suite.Require().NoError(suite.service.Reconcile(slot.ID, nil))
	suite.Empty(suite.store.volunteers)
	suite.Empty(suite.store.memberships)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
