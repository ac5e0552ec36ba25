package repository

import (
	"or-caseflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// CaseEventRepository handles database operations for the case audit log
type CaseEventRepository struct {
	db *gorm.DB
}

// NewCaseEventRepository creates a new case event repository
func NewCaseEventRepository(db *gorm.DB) *CaseEventRepository {
	return &CaseEventRepository{db: db}
}

// Append writes one audit entry. Audit writes do not touch the board counter.
func (r *CaseEventRepository) Append(event *models.CaseEvent) error {
	return r.db.Create(event).Error
}

// GetByCaseUID retrieves the audit trail of one case, oldest first
func (r *CaseEventRepository) GetByCaseUID(caseUID string) ([]models.CaseEvent, error) {
	var events []models.CaseEvent
	err := r.db.Where("case_uid = ?", caseUID).Order("created_at ASC").Find(&events).Error
	return events, err
}
