package models

import "strings"

// DefaultORRooms is the room list a fresh installation starts with.
// OR7 is reserved for endoscopy and never appears on the board.
var DefaultORRooms = []string{"OR1", "OR2", "OR3", "OR4", "OR5", "OR6", "OR8"}

// ORRoom represents an operating room visible on the board
type ORRoom struct {
	BaseModel
	Name     string `json:"name" gorm:"size:10;uniqueIndex;not null" validate:"required,max=10"`
	Position int    `json:"position" gorm:"not null;default:0"`
}

// TableName returns the table name for ORRoom
func (ORRoom) TableName() string {
	return "or_rooms"
}

// NormalizeRoomName canonicalizes a room name: trims, uppercases, and
// rejects anything that is not an OR room or is the excluded OR7.
func NormalizeRoomName(name string) (string, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(n, "OR") || n == "OR" {
		return "", false
	}
	if n == "OR7" {
		return "", false
	}
	return n, true
}

// NormalizeRoomNames canonicalizes a list of room names, dropping invalid
// entries and duplicates while preserving order. Falls back to the default
// room list when nothing survives.
func NormalizeRoomNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n, ok := NormalizeRoomName(name)
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultORRooms...)
	}
	return out
}
