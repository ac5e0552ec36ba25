package testutils

import (
	"fmt"
	"time"

	"or-caseflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles the factories a test suite needs
type FactorySet struct {
	Case *CaseRecordFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Case: NewCaseRecordFactory(),
	}
}

// CaseRecordFactory provides methods to create test CaseRecord data
type CaseRecordFactory struct {
	counter int
}

// NewCaseRecordFactory creates a new CaseRecordFactory
func NewCaseRecordFactory() *CaseRecordFactory {
	return &CaseRecordFactory{}
}

// Create creates a test CaseRecord with default values and a unique HN
func (f *CaseRecordFactory) Create() *models.CaseRecord {
	f.counter++
	record := &models.CaseRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ORRoom:        "OR1",
		Date:          "2025-09-01",
		ScheduledTime: "09:00",
		Urgency:       models.UrgencyElective,
		Period:        models.PeriodInHours,
		HN:            fmt.Sprintf("650%05d", f.counter),
		PatientName:   "ทดสอบ ระบบ",
		Age:           "42",
		Department:    "ศัลยกรรม",
		Doctor:        "นพ.สุริยา คุณาชน",
		Diagnoses:     models.StringList{"Acute appendicitis"},
		Operations:    models.StringList{"Appendectomy"},
		Ward:          "ศัลยกรรมชาย",
		CaseSize:      models.CaseSizeMajor,
		State:         models.CaseStateScheduled,
	}
	record.EnsureCaseUID()
	return record
}

// WithRoom sets the operating room
func (f *CaseRecordFactory) WithRoom(room string) *models.CaseRecord {
	record := f.Create()
	record.ORRoom = room
	record.CaseUID = ""
	record.EnsureCaseUID()
	return record
}

// WithDate sets the case date
func (f *CaseRecordFactory) WithDate(date string) *models.CaseRecord {
	record := f.Create()
	record.Date = date
	record.CaseUID = ""
	record.EnsureCaseUID()
	return record
}

// WithTime sets the scheduled time ("HH:MM" or "TF")
func (f *CaseRecordFactory) WithTime(timeStr string) *models.CaseRecord {
	record := f.Create()
	record.ScheduledTime = timeStr
	record.CaseUID = ""
	record.EnsureCaseUID()
	return record
}

// WithHN sets the patient hospital number
func (f *CaseRecordFactory) WithHN(hn string) *models.CaseRecord {
	record := f.Create()
	record.HN = hn
	record.CaseUID = ""
	record.EnsureCaseUID()
	return record
}

// WithState sets the lifecycle state
func (f *CaseRecordFactory) WithState(state models.CaseState) *models.CaseRecord {
	record := f.Create()
	record.State = state
	return record
}

// WithDoctor sets the doctor name
func (f *CaseRecordFactory) WithDoctor(doctor string) *models.CaseRecord {
	record := f.Create()
	record.Doctor = doctor
	return record
}

// Completed creates a record with everything the completeness check wants:
// both times, a team and at least one operation.
func (f *CaseRecordFactory) Completed() *models.CaseRecord {
	record := f.Create()
	record.TimeStart = "09:05"
	record.TimeEnd = "11:40"
	record.Scrub = "พว.ทดสอบ หนึ่ง"
	record.Circulate = "พว.ทดสอบ สอง"
	record.State = models.CaseStateReturned
	record.PostopCompleted = true
	record.ReturnedToWardAt = time.Now().UTC().Format(time.RFC3339)
	return record
}
