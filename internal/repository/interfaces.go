package repository

import (
	"or-caseflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CaseRecordRepositoryInterface defines the interface for case record repository operations
type CaseRecordRepositoryInterface interface {
	Create(record *models.CaseRecord) error
	GetByID(id uuid.UUID) (*models.CaseRecord, error)
	GetByCaseUID(caseUID string) (*models.CaseRecord, error)
	GetAll() ([]models.CaseRecord, error)
	GetByDate(date string) ([]models.CaseRecord, error)
	GetByState(state models.CaseState) ([]models.CaseRecord, error)
	GetLatestByHN(hn string) (*models.CaseRecord, error)
	Update(record *models.CaseRecord, expectedVersion int) error
	Delete(id uuid.UUID) error
	DeleteByDate(date string) (int64, error)
	ReplaceDate(date string, records []models.CaseRecord) error
	Seq() (int64, error)
}

// RoomRepositoryInterface defines the interface for operating room repository operations
type RoomRepositoryInterface interface {
	GetAll() ([]models.ORRoom, error)
	GetNames() ([]string, error)
	Replace(names []string) ([]string, error)
}

// CaseEventRepositoryInterface defines the interface for case event repository operations
type CaseEventRepositoryInterface interface {
	Append(event *models.CaseEvent) error
	GetByCaseUID(caseUID string) ([]models.CaseEvent, error)
}
