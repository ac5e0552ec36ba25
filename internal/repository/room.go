package repository

import (
	"or-caseflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// RoomRepository handles database operations for operating rooms
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAll retrieves all rooms ordered by board position
func (r *RoomRepository) GetAll() ([]models.ORRoom, error) {
	var rooms []models.ORRoom
	err := r.db.Order("position ASC").Find(&rooms).Error
	return rooms, err
}

// GetNames retrieves the room names ordered by board position
func (r *RoomRepository) GetNames() ([]string, error) {
	rooms, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
	}
	return names, nil
}

// Replace swaps the room list for a normalized copy of the given names and
// returns the list that was actually stored. Invalid names are dropped; an
// empty result falls back to the default rooms.
func (r *RoomRepository) Replace(names []string) ([]string, error) {
	normalized := models.NormalizeRoomNames(names)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ORRoom{}).Error; err != nil {
			return err
		}
		for i, name := range normalized {
			room := models.ORRoom{Name: name, Position: i}
			if err := tx.Create(&room).Error; err != nil {
				return err
			}
		}
		return bumpSeq(tx)
	})
	if err != nil {
		return nil, err
	}
	return normalized, nil
}
