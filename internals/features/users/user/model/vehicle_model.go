package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleModel: kendaraan milik user (1:N), diganti wholesale saat update profil.
type VehicleModel struct {
	VehicleID      uuid.UUID `gorm:"column:vehicle_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VehicleUserID  uuid.UUID `gorm:"column:vehicle_user_id;type:uuid;not null;index" json:"user_id"`
	VehiclePlateNo string    `gorm:"column:vehicle_plate_no;size:20;not null" json:"plateNo"`
	VehicleBrand   string    `gorm:"column:vehicle_brand;size:50" json:"brand"`
	VehicleModel   string    `gorm:"column:vehicle_model;size:50" json:"model"`
	VehicleColor   string    `gorm:"column:vehicle_color;size:30" json:"color"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

func (v *VehicleModel) BeforeCreate(tx *gorm.DB) error {
	if v.VehicleID == uuid.Nil {
		v.VehicleID = uuid.New()
	}
	return nil
}
