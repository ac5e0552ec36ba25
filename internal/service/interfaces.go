package service

import (
	"context"

	"or-caseflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BoardServiceInterface defines the interface for board operations
type BoardServiceInterface interface {
	CreateCase(req *CreateCaseRequest) (*CaseResponse, error)
	UpdateCase(id uuid.UUID, req *UpdateCaseRequest) (*CaseResponse, error)
	DeleteCase(id uuid.UUID) error
	GetCase(id uuid.UUID) (*CaseResponse, error)
	ListBoard(date string) (*BoardResponse, error)
	ClearDay(date string) (*ClearDayResponse, error)
	RestoreDay(date string, snapshot []models.CaseRecord) error
	ListRooms() ([]string, error)
	ReplaceRooms(names []string) ([]string, error)
	Seq() (int64, error)
	NextQueuePosition(date, room, doctor string) (int, error)
}

// LifecycleServiceInterface defines the interface for case lifecycle operations
type LifecycleServiceInterface interface {
	ApplySignals(observations []StatusObservation) (int, error)
	MarkReturning(caseUID string) (*models.CaseRecord, error)
	Patch(caseUID string, req *PatchCaseRequest) (*models.CaseRecord, error)
	SweepReturning() (*SweepResult, error)
	Events(caseUID string) ([]models.CaseEvent, error)
}

// DispatchServiceInterface defines the interface for runner synchronization
type DispatchServiceInterface interface {
	PushDay(ctx context.Context, date string) (*PushResult, error)
	StatusMap(ctx context.Context, date string) (map[string]PickupStatus, error)
	Ack(ctx context.Context, pickupID, user string) error
	Arrive(ctx context.Context, pickupID, user string) error
	Finish(ctx context.Context, pickupID, user string) error
	Cycle(ctx context.Context, date string) error
	Health(ctx context.Context) bool
	Enabled() bool
}
