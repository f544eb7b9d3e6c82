package dto

import (
	"time"

	"github.com/google/uuid"

	blockModel "parkirku_backend/internals/features/parking/block/model"
	m "parkirku_backend/internals/features/parking/location/model"
)

/* =============== REQUESTS =============== */

type CreateLocationRequest struct {
	Name    string `json:"name"    validate:"required,min=3,max=100"`
	Address string `json:"address" validate:"required,min=3,max=255"`
}

// Update partial: field nil dibiarkan apa adanya.
type UpdateLocationRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=3,max=100"`
	Address *string `json:"address" validate:"omitempty,min=3,max=255"`
}

/* =============== RESPONSES =============== */

type AdminSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type LocationResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	CreatedBy uuid.UUID     `json:"createdBy"`
	Admin     *AdminSummary `json:"admin,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func FromLocationModel(l m.ParkingLocationModel) LocationResponse {
	return LocationResponse{
		ID:        l.LocationID,
		Name:      l.LocationName,
		Address:   l.LocationAddress,
		CreatedBy: l.LocationCreatedBy,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// Listing publik: lokasi + block yang belum penuh saja.
type BlockSummary struct {
	ID             uuid.UUID `json:"id"`
	LocationID     uuid.UUID `json:"locationId"`
	BlockName      string    `json:"blockName"`
	TotalSlots     int       `json:"totalSlots"`
	AvailableSlots int       `json:"availableSlots"`
	IsFull         bool      `json:"isFull"`
	VehicleType    string    `json:"vehicleType"`
}

func FromBlockModel(b blockModel.ParkingBlockModel) BlockSummary {
	return BlockSummary{
		ID:             b.BlockID,
		LocationID:     b.BlockLocationID,
		BlockName:      b.BlockName,
		TotalSlots:     b.BlockTotalSlots,
		AvailableSlots: b.BlockAvailableSlots,
		IsFull:         b.BlockIsFull,
		VehicleType:    b.BlockVehicleType,
	}
}

type PublicParkingResponse struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Blocks  []BlockSummary `json:"blocks"`
}
