package service

import (
	"errors"
	"fmt"
	"time"

	"volunteer-checkin-backend/internal/database/models"
	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	repo      repository.EventRepositoryInterface
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, validator *validator.Validate) *EventService {
	return &EventService{repo: repo, validator: validator}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	Date        time.Time `json:"date" validate:"required"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Date        string                  `json:"date"`
	CreatedAt   string                  `json:"created_at"`
	Positions   []EventPositionResponse `json:"positions,omitempty"`
}

// EventPositionResponse summarizes a position nested under an event detail
type EventPositionResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	VolunteersNeeded int       `json:"volunteers_needed"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date.UTC(),
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetByID retrieves an event by ID with its positions
func (s *EventService) GetByID(id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetWithPositions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	response := s.toResponse(event)
	response.Positions = make([]EventPositionResponse, len(event.Positions))
	for i, position := range event.Positions {
		response.Positions[i] = EventPositionResponse{
			ID:               position.ID,
			Name:             position.Name,
			StartTime:        position.StartTime.UTC().Format(time.RFC3339),
			EndTime:          position.EndTime.UTC().Format(time.RFC3339),
			VolunteersNeeded: position.VolunteersNeeded,
		}
	}

	return response, nil
}

// GetAll retrieves all events with pagination
func (s *EventService) GetAll(page, pageSize int) (*EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	events, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = *s.toResponse(&events[i])
	}

	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete deletes an event and all positions and slots under it
func (s *EventService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// toResponse converts an event model to response
func (s *EventService) toResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date.UTC().Format(time.RFC3339),
		CreatedAt:   event.CreatedAt.UTC().Format(time.RFC3339),
	}
}
