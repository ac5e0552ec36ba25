package repository

import (
	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseRecordRepository handles database operations for case records
type CaseRecordRepository struct {
	db *gorm.DB
}

// NewCaseRecordRepository creates a new case record repository
func NewCaseRecordRepository(db *gorm.DB) *CaseRecordRepository {
	return &CaseRecordRepository{db: db}
}

// bumpSeq increments the board change counter inside the caller's transaction
func bumpSeq(tx *gorm.DB) error {
	return tx.Model(&models.BoardCounter{}).
		Where("id = ?", models.BoardCounterRowID).
		UpdateColumn("seq", gorm.Expr("seq + 1")).Error
}

// Create inserts a new case record and bumps the change counter
func (r *CaseRecordRepository) Create(record *models.CaseRecord) error {
	record.EnsureCaseUID()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return bumpSeq(tx)
	})
}

// GetByID retrieves a case record by ID
func (r *CaseRecordRepository) GetByID(id uuid.UUID) (*models.CaseRecord, error) {
	var record models.CaseRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByCaseUID retrieves a case record by its stable case identity
func (r *CaseRecordRepository) GetByCaseUID(caseUID string) (*models.CaseRecord, error) {
	var record models.CaseRecord
	err := r.db.First(&record, "case_uid = ?", caseUID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves every case record, newest day first
func (r *CaseRecordRepository) GetAll() ([]models.CaseRecord, error) {
	var records []models.CaseRecord
	err := r.db.Order("date DESC, scheduled_time ASC").Find(&records).Error
	return records, err
}

// GetByDate retrieves the case records of one day
func (r *CaseRecordRepository) GetByDate(date string) ([]models.CaseRecord, error) {
	var records []models.CaseRecord
	err := r.db.Where("date = ?", date).Find(&records).Error
	return records, err
}

// GetByState retrieves all case records in a given lifecycle state
func (r *CaseRecordRepository) GetByState(state models.CaseState) ([]models.CaseRecord, error) {
	var records []models.CaseRecord
	err := r.db.Where("state = ?", state).Find(&records).Error
	return records, err
}

// GetLatestByHN retrieves the most recent case for a patient, newest date
// then latest scheduled time first.
func (r *CaseRecordRepository) GetLatestByHN(hn string) (*models.CaseRecord, error) {
	var record models.CaseRecord
	err := r.db.Where("hn = ?", hn).
		Order("date DESC, scheduled_time DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update saves a case record guarded by optimistic concurrency: the row is
// only written when its stored version still equals expectedVersion. The
// change counter is bumped in the same transaction.
func (r *CaseRecordRepository) Update(record *models.CaseRecord, expectedVersion int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CaseRecord{}).
			Where("id = ? AND version = ?", record.ID, expectedVersion).
			Select("*").
			Omit("id", "created_at", "case_uid").
			Updates(record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.CaseRecord{}).Where("id = ?", record.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return apperrors.ErrVersionConflict
		}
		return bumpSeq(tx)
	})
}

// Delete removes a case record and bumps the change counter
func (r *CaseRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.CaseRecord{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return bumpSeq(tx)
	})
}

// DeleteByDate removes every case of one day and returns how many were removed
func (r *CaseRecordRepository) DeleteByDate(date string) (int64, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.CaseRecord{}, "date = ?", date)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return bumpSeq(tx)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ReplaceDate restores a day from a snapshot: the day's current records are
// dropped and the snapshot rows inserted, all in one transaction.
func (r *CaseRecordRepository) ReplaceDate(date string, records []models.CaseRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CaseRecord{}, "date = ?", date).Error; err != nil {
			return err
		}
		for i := range records {
			records[i].EnsureCaseUID()
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return bumpSeq(tx)
	})
}

// Seq reads the current board change counter
func (r *CaseRecordRepository) Seq() (int64, error) {
	var counter models.BoardCounter
	err := r.db.First(&counter, "id = ?", models.BoardCounterRowID).Error
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
