package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTotalSlotsGrow(t *testing.T) {
	b := ParkingBlockModel{BlockTotalSlots: 5, BlockAvailableSlots: 2}
	b.ApplyTotalSlots(8)

	assert.Equal(t, 8, b.BlockTotalSlots)
	assert.Equal(t, 5, b.BlockAvailableSlots)
	assert.False(t, b.BlockIsFull)
}

func TestApplyTotalSlotsShrinkClampsToZero(t *testing.T) {
	// 10 total, 3 available → 7 terpakai; shrink ke 5 tidak boleh negatif
	b := ParkingBlockModel{BlockTotalSlots: 10, BlockAvailableSlots: 3}
	b.ApplyTotalSlots(5)

	assert.Equal(t, 5, b.BlockTotalSlots)
	assert.Equal(t, 0, b.BlockAvailableSlots)
	assert.True(t, b.BlockIsFull)
}

func TestApplyTotalSlotsClampsToNewTotal(t *testing.T) {
	b := ParkingBlockModel{BlockTotalSlots: 5, BlockAvailableSlots: 5}
	b.ApplyTotalSlots(3)

	assert.Equal(t, 3, b.BlockAvailableSlots)
	assert.False(t, b.BlockIsFull)
}

func TestSyncFull(t *testing.T) {
	b := ParkingBlockModel{BlockTotalSlots: 2, BlockAvailableSlots: 0}
	b.SyncFull()
	assert.True(t, b.BlockIsFull)

	b.BlockAvailableSlots = 1
	b.SyncFull()
	assert.False(t, b.BlockIsFull)
}

func TestHourlyRateFor(t *testing.T) {
	assert.Equal(t, 150, HourlyRateFor(VehicleTypeCar))
	assert.Equal(t, 80, HourlyRateFor(VehicleTypeBike))
	// jenis tak dikenal jatuh ke tarif mobil
	assert.Equal(t, 150, HourlyRateFor("Truck"))
}
