package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParkingSlotModel: satu slot dalam block. slot_is_occupied true iff
// ada booking aktif (belum COMPLETED) yang memegangnya.
type ParkingSlotModel struct {
	SlotID         uuid.UUID `gorm:"column:slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SlotBlockID    uuid.UUID `gorm:"column:slot_block_id;type:uuid;not null;index" json:"blockId"`
	SlotNumber     int       `gorm:"column:slot_number;not null" json:"slotNumber"`
	SlotIsOccupied bool      `gorm:"column:slot_is_occupied;not null;default:false" json:"isOccupied"`
}

func (ParkingSlotModel) TableName() string {
	return "parking_slots"
}

func (s *ParkingSlotModel) BeforeCreate(tx *gorm.DB) error {
	if s.SlotID == uuid.Nil {
		s.SlotID = uuid.New()
	}
	return nil
}
