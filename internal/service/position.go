package service

import (
	"errors"
	"fmt"
	"time"

	"volunteer-checkin-backend/internal/database/models"
	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/repository"
	"volunteer-checkin-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionService handles business logic for positions
type PositionService struct {
	repo      repository.PositionRepositoryInterface
	eventRepo repository.EventRepositoryInterface
	validator *validator.Validate
}

// NewPositionService creates a new position service
func NewPositionService(repo repository.PositionRepositoryInterface, eventRepo repository.EventRepositoryInterface, validator *validator.Validate) *PositionService {
	return &PositionService{
		repo:      repo,
		eventRepo: eventRepo,
		validator: validator,
	}
}

// CreatePositionRequest represents the request to create a position
type CreatePositionRequest struct {
	EventID          uuid.UUID `json:"event_id" validate:"required"`
	Name             string    `json:"name" validate:"required,min=1,max=100"`
	StartTime        time.Time `json:"start_time" validate:"required"`
	EndTime          time.Time `json:"end_time" validate:"required"`
	VolunteersNeeded int       `json:"volunteers_needed,omitempty"`
}

// PositionResponse represents the response for position operations
type PositionResponse struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"event_id"`
	Name             string    `json:"name"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	VolunteersNeeded int       `json:"volunteers_needed"`
	CreatedAt        string    `json:"created_at"`
}

// PositionListResponse represents a paginated list of positions
type PositionListResponse struct {
	Positions []PositionResponse `json:"positions"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new position under an event
func (s *PositionService) Create(req *CreatePositionRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := schedule.ValidatePositionWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.GetByID(req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}

	needed := req.VolunteersNeeded
	if needed < 1 {
		needed = 1
	}

	position := &models.Position{
		EventID:          req.EventID,
		Name:             req.Name,
		StartTime:        req.StartTime.UTC(),
		EndTime:          req.EndTime.UTC(),
		VolunteersNeeded: needed,
	}

	if err := s.repo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	return s.toResponse(position), nil
}

// GetByID retrieves a position by ID
func (s *PositionService) GetByID(id uuid.UUID) (*PositionResponse, error) {
	position, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	return s.toResponse(position), nil
}

// GetByEvent retrieves positions for an event
func (s *PositionService) GetByEvent(eventID uuid.UUID, page, pageSize int) (*PositionListResponse, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	positions, total, err := s.repo.GetByEventID(eventID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}

	responses := make([]PositionResponse, len(positions))
	for i := range positions {
		responses[i] = *s.toResponse(&positions[i])
	}

	return &PositionListResponse{
		Positions: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Delete deletes a position and its slots
func (s *PositionService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPositionNotFound
		}
		return fmt.Errorf("failed to get position: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	return nil
}

// toResponse converts a position model to response
func (s *PositionService) toResponse(position *models.Position) *PositionResponse {
	return &PositionResponse{
		ID:               position.ID,
		EventID:          position.EventID,
		Name:             position.Name,
		StartTime:        position.StartTime.UTC().Format(time.RFC3339),
		EndTime:          position.EndTime.UTC().Format(time.RFC3339),
		VolunteersNeeded: position.VolunteersNeeded,
		CreatedAt:        position.CreatedAt.UTC().Format(time.RFC3339),
	}
}
