package models

import (
	"crypto/sha1"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a list of strings as a jsonb column
type StringList []string

// Value implements driver.Valuer for StringList
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for StringList
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	if len(data) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// CaseRecord represents one surgical case on the coordination board
type CaseRecord struct {
	BaseModel

	// CaseUID is the stable identity of the case, assigned once at creation
	// from the room/HN/time/date it was registered with. It never changes,
	// even when those fields are edited later.
	CaseUID string `json:"case_uid" gorm:"size:40;uniqueIndex;not null"`

	// Scheduling
	ORRoom        string  `json:"or_room" gorm:"size:10;index" validate:"max=10"`
	Date          string  `json:"date" gorm:"size:10;index;not null" validate:"required,len=10"`
	ScheduledTime string  `json:"scheduled_time" gorm:"size:5" validate:"max=5"`
	Queue         int     `json:"queue" gorm:"default:0" validate:"min=0,max=9"`
	Urgency       Urgency `json:"urgency" gorm:"type:varchar(20);default:'elective'"`
	Period        Period  `json:"period" gorm:"type:varchar(10);default:'in'"`

	// Clinical
	HN          string     `json:"hn" gorm:"size:20;index;not null" validate:"required,max=20"`
	PatientName string     `json:"patient_name" gorm:"size:200" validate:"max=200"`
	Age         string     `json:"age" gorm:"size:10" validate:"max=10"`
	Department  string     `json:"department" gorm:"size:100" validate:"max=100"`
	Doctor      string     `json:"doctor" gorm:"size:200" validate:"max=200"`
	Diagnoses   StringList `json:"diagnoses" gorm:"type:jsonb"`
	Operations  StringList `json:"operations" gorm:"type:jsonb"`
	Ward        string     `json:"ward" gorm:"size:100" validate:"max=100"`
	CaseSize    CaseSize   `json:"case_size" gorm:"type:varchar(10)"`

	// Team
	Assist1   string `json:"assist1" gorm:"size:200" validate:"max=200"`
	Assist2   string `json:"assist2" gorm:"size:200" validate:"max=200"`
	Scrub     string `json:"scrub" gorm:"size:200" validate:"max=200"`
	Circulate string `json:"circulate" gorm:"size:200" validate:"max=200"`

	// Timing (HH:MM wall-clock strings, ISO timestamps for the milestones)
	TimeStart          string `json:"time_start" gorm:"size:5" validate:"max=5"`
	TimeEnd            string `json:"time_end" gorm:"size:5" validate:"max=5"`
	ReturningStartedAt string `json:"returning_started_at" gorm:"size:35"`
	ReturnedToWardAt   string `json:"returned_to_ward_at" gorm:"size:35"`

	// Lifecycle
	State           CaseState `json:"state" gorm:"type:varchar(30);default:'scheduled';index"`
	PostopCompleted bool      `json:"postop_completed" gorm:"default:false"`
	Version         int       `json:"version" gorm:"default:0"`
}

// TableName returns the table name for CaseRecord
func (CaseRecord) TableName() string {
	return "case_records"
}

// UID returns the volatile composite key room|hn|time|date. Unlike CaseUID
// it tracks edits, so clients use it to address the row they currently see.
func (c *CaseRecord) UID() string {
	return fmt.Sprintf("%s|%s|%s|%s", c.ORRoom, c.HN, c.ScheduledTime, c.Date)
}

// ComputeCaseUID derives the stable case identity from the registration fields
func ComputeCaseUID(room, hn, timeStr, date string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%s|%s", room, hn, timeStr, date)))
	return hex.EncodeToString(sum[:])
}

// EnsureCaseUID assigns the stable identity if the record does not have one yet
func (c *CaseRecord) EnsureCaseUID() {
	if c.CaseUID == "" {
		c.CaseUID = ComputeCaseUID(c.ORRoom, c.HN, c.ScheduledTime, c.Date)
	}
}

// ParseDate parses the record date in YYYY-MM-DD form
func (c *CaseRecord) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", c.Date)
}
