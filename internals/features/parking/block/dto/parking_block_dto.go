package dto

import (
	"github.com/google/uuid"

	m "parkirku_backend/internals/features/parking/block/model"
)

/* =============== REQUESTS =============== */

type CreateBlockRequest struct {
	BlockName   string `json:"blockName"   validate:"required,min=1,max=50"`
	TotalSlots  int    `json:"totalSlots"  validate:"required,min=1"`
	VehicleType string `json:"vehicleType" validate:"omitempty,oneof=Car Bike"`
}

// Update (partial): blockName dan/atau totalSlots.
type UpdateBlockRequest struct {
	BlockName  *string `json:"blockName"  validate:"omitempty,min=1,max=50"`
	TotalSlots *int    `json:"totalSlots" validate:"omitempty,min=0"`
}

/* =============== RESPONSES =============== */

type BlockResponse struct {
	ID             uuid.UUID      `json:"id"`
	LocationID     uuid.UUID      `json:"locationId"`
	BlockName      string         `json:"blockName"`
	TotalSlots     int            `json:"totalSlots"`
	AvailableSlots int            `json:"availableSlots"`
	IsFull         bool           `json:"isFull"`
	VehicleType    string         `json:"vehicleType"`
	Slots          []SlotResponse `json:"slots,omitempty"`
}

func FromBlockModel(b m.ParkingBlockModel) BlockResponse {
	return BlockResponse{
		ID:             b.BlockID,
		LocationID:     b.BlockLocationID,
		BlockName:      b.BlockName,
		TotalSlots:     b.BlockTotalSlots,
		AvailableSlots: b.BlockAvailableSlots,
		IsFull:         b.BlockIsFull,
		VehicleType:    b.BlockVehicleType,
	}
}

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	BlockID    uuid.UUID `json:"blockId"`
	SlotNumber int       `json:"slotNumber"`
	IsOccupied bool      `json:"isOccupied"`
}

func FromSlotModel(s m.ParkingSlotModel) SlotResponse {
	return SlotResponse{
		ID:         s.SlotID,
		BlockID:    s.SlotBlockID,
		SlotNumber: s.SlotNumber,
		IsOccupied: s.SlotIsOccupied,
	}
}
