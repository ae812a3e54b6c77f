package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volunteer-checkin-backend/internal/api/handlers"
	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/mocks"
	"volunteer-checkin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EventHandlerTestSuite defines the test suite for EventHandler
type EventHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockEvent *mocks.MockEventServiceInterface
	handler   *handlers.EventHandler
	router    *gin.Engine
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEvent = mocks.NewMockEventServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEventHandler(suite.mockEvent)

	suite.router = gin.New()
	suite.router.POST("/events", suite.handler.CreateEvent)
	suite.router.GET("/events", suite.handler.ListEvents)
	suite.router.GET("/events/:id", suite.handler.GetEvent)
	suite.router.DELETE("/events/:id", suite.handler.DeleteEvent)
}

func (suite *EventHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventHandlerTestSuite) TestCreateEvent_Success() {
	resp := &service.EventResponse{
		ID:   uuid.New(),
		Name: "Spring Fair",
		Date: "2025-06-14",
	}
	suite.mockEvent.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body, err := json.Marshal(service.CreateEventRequest{
		Name: "Spring Fair",
		Date: time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.EventResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Spring Fair", got.Name)
}

func (suite *EventHandlerTestSuite) TestGetEvent_NotFound() {
	id := uuid.New()
	suite.mockEvent.EXPECT().GetByID(id).Return(nil, apperrors.ErrEventNotFound)

	req := httptest.NewRequest(http.MethodGet, "/events/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "event not found")
}

func (suite *EventHandlerTestSuite) TestListEvents_DefaultPagination() {
	resp := &service.EventListResponse{
		Events:   []service.EventResponse{},
		Total:    0,
		Page:     1,
		PageSize: 20,
	}
	suite.mockEvent.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *EventHandlerTestSuite) TestDeleteEvent_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/events/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
