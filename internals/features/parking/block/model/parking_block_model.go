package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis kendaraan per block + tarif per jam.
const (
	VehicleTypeCar  = "Car"
	VehicleTypeBike = "Bike"
)

var HourlyRates = map[string]int{
	VehicleTypeCar:  150,
	VehicleTypeBike: 80,
}

// HourlyRateFor mengembalikan tarif per jam untuk jenis kendaraan block.
func HourlyRateFor(vehicleType string) int {
	if rate, ok := HourlyRates[vehicleType]; ok {
		return rate
	}
	return HourlyRates[VehicleTypeCar]
}

// ParkingBlockModel: subdivisi lokasi dengan kapasitas slot tetap.
// Invariant: 0 <= block_available_slots <= block_total_slots, dan
// block_is_full harus selalu == (available == 0) — panggil SyncFull()
// setiap kali available berubah.
type ParkingBlockModel struct {
	BlockID             uuid.UUID `gorm:"column:block_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BlockLocationID     uuid.UUID `gorm:"column:block_location_id;type:uuid;not null;index" json:"locationId"`
	BlockName           string    `gorm:"column:block_name;size:50;not null" json:"blockName"`
	BlockTotalSlots     int       `gorm:"column:block_total_slots;not null;check:block_total_slots >= 0" json:"totalSlots"`
	BlockAvailableSlots int       `gorm:"column:block_available_slots;not null" json:"availableSlots"`
	BlockIsFull         bool      `gorm:"column:block_is_full;not null;default:false" json:"isFull"`
	BlockVehicleType    string    `gorm:"column:block_vehicle_type;type:varchar(20);not null;default:'Car'" json:"vehicleType"`
}

func (ParkingBlockModel) TableName() string {
	return "parking_blocks"
}

func (b *ParkingBlockModel) BeforeCreate(tx *gorm.DB) error {
	if b.BlockID == uuid.Nil {
		b.BlockID = uuid.New()
	}
	b.SyncFull()
	return nil
}

// SyncFull menghitung ulang flag is_full dari available slots.
func (b *ParkingBlockModel) SyncFull() {
	b.BlockIsFull = b.BlockAvailableSlots == 0
}

// ApplyTotalSlots menerapkan perubahan total slot: available digeser
// sebesar delta dan di-clamp ke [0, newTotal].
func (b *ParkingBlockModel) ApplyTotalSlots(newTotal int) {
	delta := newTotal - b.BlockTotalSlots
	b.BlockTotalSlots = newTotal
	b.BlockAvailableSlots += delta
	if b.BlockAvailableSlots < 0 {
		b.BlockAvailableSlots = 0
	}
	if b.BlockAvailableSlots > newTotal {
		b.BlockAvailableSlots = newTotal
	}
	b.SyncFull()
}
