package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParkingLocationModel: lokasi parkir tunggal (maksimal satu row system-wide,
// dijaga oleh operasi create).
type ParkingLocationModel struct {
	LocationID        uuid.UUID `gorm:"column:location_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LocationName      string    `gorm:"column:location_name;size:100;not null" json:"name"`
	LocationAddress   string    `gorm:"column:location_address;size:255;not null" json:"address"`
	LocationCreatedBy uuid.UUID `gorm:"column:location_created_by;type:uuid;not null" json:"createdBy"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ParkingLocationModel) TableName() string {
	return "parking_locations"
}

func (l *ParkingLocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.LocationID == uuid.Nil {
		l.LocationID = uuid.New()
	}
	return nil
}
