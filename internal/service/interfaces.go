package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EventServiceInterface defines the interface for event service operations
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*EventResponse, error)
	GetByID(id uuid.UUID) (*EventResponse, error)
	GetAll(page, pageSize int) (*EventListResponse, error)
	Delete(id uuid.UUID) error
}

// PositionServiceInterface defines the interface for position service operations
type PositionServiceInterface interface {
	Create(req *CreatePositionRequest) (*PositionResponse, error)
	GetByID(id uuid.UUID) (*PositionResponse, error)
	GetByEvent(eventID uuid.UUID, page, pageSize int) (*PositionListResponse, error)
	Delete(id uuid.UUID) error
}

// SlotServiceInterface defines the interface for slot service operations
type SlotServiceInterface interface {
	Upsert(positionID uuid.UUID, req *UpsertSlotRequest, editingSlotID *uuid.UUID) (*SlotResponse, error)
	GetByPosition(positionID uuid.UUID) (*SlotListResponse, error)
	GetByID(id uuid.UUID) (*SlotResponse, error)
	Delete(id uuid.UUID) error
}

// CheckInServiceInterface defines the interface for check-in operations
type CheckInServiceInterface interface {
	ResolveActiveSlot(positionID uuid.UUID, explicitSlotID *uuid.UUID) (*SlotResponse, error)
	CheckIn(slotID uuid.UUID, email, name string) error
}
