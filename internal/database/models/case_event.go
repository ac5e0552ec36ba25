package models

import "encoding/json"

// CaseEvent is an append-only audit entry for case lifecycle milestones
type CaseEvent struct {
	BaseModel
	CaseUID string          `json:"case_uid" gorm:"size:40;index;not null"`
	HN      string          `json:"hn" gorm:"size:20;index"`
	Event   string          `json:"event" gorm:"size:50;not null"`
	Details json.RawMessage `json:"details" gorm:"type:jsonb"`
}

// TableName returns the table name for CaseEvent
func (CaseEvent) TableName() string {
	return "case_events"
}
