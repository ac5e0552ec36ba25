package models

// BoardCounter is a single-row table holding the board change counter.
// Every mutating store operation bumps Seq in the same transaction, so
// clients can cheaply poll for "did anything change".
type BoardCounter struct {
	ID  int   `json:"id" gorm:"primary_key"`
	Seq int64 `json:"seq" gorm:"not null;default:0"`
}

// TableName returns the table name for BoardCounter
func (BoardCounter) TableName() string {
	return "board_counters"
}

// BoardCounterRowID is the fixed primary key of the single counter row
const BoardCounterRowID = 1
