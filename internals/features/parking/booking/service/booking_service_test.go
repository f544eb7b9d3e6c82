package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	blockModel "parkirku_backend/internals/features/parking/block/model"
	model "parkirku_backend/internals/features/parking/booking/model"
	helper "parkirku_backend/internals/helpers"
)

func paging(page, limit int) helper.Paging {
	return helper.Paging{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// Skema dibuat manual: DDL produksi memakai default Postgres yang tidak
// dikenal sqlite.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // tiap koneksi :memory: adalah database terpisah

	for _, ddl := range []string{
		`CREATE TABLE parking_blocks (
			block_id TEXT PRIMARY KEY,
			block_location_id TEXT NOT NULL,
			block_name TEXT NOT NULL,
			block_total_slots INTEGER NOT NULL,
			block_available_slots INTEGER NOT NULL,
			block_is_full NUMERIC NOT NULL DEFAULT false,
			block_vehicle_type TEXT NOT NULL DEFAULT 'Car'
		)`,
		`CREATE TABLE parking_slots (
			slot_id TEXT PRIMARY KEY,
			slot_block_id TEXT NOT NULL,
			slot_number INTEGER NOT NULL,
			slot_is_occupied NUMERIC NOT NULL DEFAULT false
		)`,
		`CREATE TABLE bookings (
			booking_id TEXT PRIMARY KEY,
			booking_code TEXT NOT NULL UNIQUE,
			booking_user_id TEXT NOT NULL,
			booking_block_id TEXT NOT NULL,
			booking_slot_id TEXT,
			booking_payment_status TEXT NOT NULL,
			booking_type TEXT NOT NULL,
			booking_status TEXT NOT NULL DEFAULT 'PENDING',
			booking_duration_hours INTEGER NOT NULL,
			booking_track_time INTEGER NOT NULL DEFAULT 0,
			booking_amount INTEGER NOT NULL DEFAULT 0,
			booking_entry_time DATETIME NOT NULL,
			booking_exit_time DATETIME NOT NULL,
			booking_date DATE NOT NULL,
			booking_order_id TEXT UNIQUE,
			booking_payment_token TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}

	return db
}

func seedBlock(t *testing.T, db *gorm.DB, totalSlots int, vehicleType string) (blockModel.ParkingBlockModel, []blockModel.ParkingSlotModel) {
	t.Helper()

	block := blockModel.ParkingBlockModel{
		BlockLocationID:     uuid.New(),
		BlockName:           "A",
		BlockTotalSlots:     totalSlots,
		BlockAvailableSlots: totalSlots,
		BlockVehicleType:    vehicleType,
	}
	require.NoError(t, db.Create(&block).Error)

	slots := make([]blockModel.ParkingSlotModel, 0, totalSlots)
	for i := 1; i <= totalSlots; i++ {
		slot := blockModel.ParkingSlotModel{SlotBlockID: block.BlockID, SlotNumber: i}
		require.NoError(t, db.Create(&slot).Error)
		slots = append(slots, slot)
	}
	return block, slots
}

func createInput(block blockModel.ParkingBlockModel, slotID *uuid.UUID) CreateBookingInput {
	entry := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return CreateBookingInput{
		UserID:        uuid.New(),
		BlockID:       block.BlockID,
		SlotID:        slotID,
		EntryTime:     entry,
		ExitTime:      entry.Add(90 * time.Minute),
		PaymentStatus: model.PaymentStatusUnpaid,
		Date:          "2026-03-01",
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func TestCreateBookingDebitsBlockAndOccupiesSlot(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, slots := seedBlock(t, db, 2, blockModel.VehicleTypeCar)

	booking, err := svc.Create(context.Background(), createInput(block, &slots[0].SlotID))
	require.NoError(t, err)

	assert.Equal(t, "BOOK-001", booking.BookingCode)
	assert.Equal(t, model.StatusPending, booking.BookingStatus)
	assert.Equal(t, model.BookingTypeWalkIn, booking.BookingType)
	assert.Equal(t, 2, booking.BookingDurationHours) // 90 menit dibulatkan ke atas
	assert.Equal(t, 90, booking.BookingTrackTime)    // rentang persis tanpa pembulatan
	assert.Equal(t, 2*blockModel.HourlyRates[blockModel.VehicleTypeCar], booking.BookingAmount)

	var got blockModel.ParkingBlockModel
	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 1, got.BlockAvailableSlots)
	assert.False(t, got.BlockIsFull)

	var slot blockModel.ParkingSlotModel
	require.NoError(t, db.First(&slot, "slot_id = ?", slots[0].SlotID).Error)
	assert.True(t, slot.SlotIsOccupied)
}

func TestCreateBookingOnlineForPaid(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 1, blockModel.VehicleTypeBike)

	in := createInput(block, nil)
	in.PaymentStatus = model.PaymentStatusPaid

	booking, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, model.BookingTypeOnline, booking.BookingType)
	assert.Equal(t, 2*blockModel.HourlyRates[blockModel.VehicleTypeBike], booking.BookingAmount)

	// block dengan 1 slot langsung penuh
	var got blockModel.ParkingBlockModel
	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 0, got.BlockAvailableSlots)
	assert.True(t, got.BlockIsFull)
}

func TestCreateBookingFullBlockRejectedWithoutSideEffects(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, slots := seedBlock(t, db, 1, blockModel.VehicleTypeCar)

	_, err := svc.Create(context.Background(), createInput(block, &slots[0].SlotID))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createInput(block, nil))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	var count int64
	require.NoError(t, db.Model(&model.BookingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var got blockModel.ParkingBlockModel
	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 0, got.BlockAvailableSlots)
}

func TestCreateBookingOccupiedSlotRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, slots := seedBlock(t, db, 2, blockModel.VehicleTypeCar)

	_, err := svc.Create(context.Background(), createInput(block, &slots[0].SlotID))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createInput(block, &slots[0].SlotID))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// penolakan tidak menyentuh counter
	var got blockModel.ParkingBlockModel
	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 1, got.BlockAvailableSlots)
}

func TestCreateBookingForeignSlotRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	blockA, _ := seedBlock(t, db, 1, blockModel.VehicleTypeCar)
	_, slotsB := seedBlock(t, db, 1, blockModel.VehicleTypeCar)

	_, err := svc.Create(context.Background(), createInput(blockA, &slotsB[0].SlotID))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestCreateBookingInvalidTimes(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 1, blockModel.VehicleTypeCar)

	in := createInput(block, nil)
	in.ExitTime = in.EntryTime.Add(-1 * time.Hour)

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestSequentialBookingCodes(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 5, blockModel.VehicleTypeCar)

	for i, want := range []string{"BOOK-001", "BOOK-002", "BOOK-003"} {
		booking, err := svc.Create(context.Background(), createInput(block, nil))
		require.NoError(t, err, "booking %d", i+1)
		assert.Equal(t, want, booking.BookingCode)
	}
}

func TestBookingLifecycle(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, slots := seedBlock(t, db, 1, blockModel.VehicleTypeCar)
	ctx := context.Background()

	in := createInput(block, &slots[0].SlotID)
	booking, err := svc.Create(ctx, in)
	require.NoError(t, err)

	// PAY: booking WALK_IN tidak menyentuh gateway
	paid, token, _, err := svc.Pay(ctx, booking.BookingID.String(), in.UserID, "Budi", "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPay, paid.BookingStatus)
	assert.Empty(t, token)

	// CONFIRM: status berubah, counter tidak (debit sudah saat create)
	confirmed, err := svc.Confirm(ctx, booking.BookingCode, in.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, confirmed.BookingStatus)

	var got blockModel.ParkingBlockModel
	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 0, got.BlockAvailableSlots)

	_, err = svc.Confirm(ctx, booking.BookingCode, in.UserID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// COMPLETE: counter kembali, slot bebas
	completed, err := svc.Complete(ctx, booking.BookingID.String(), in.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, completed.BookingStatus)

	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 1, got.BlockAvailableSlots)
	assert.False(t, got.BlockIsFull)

	var slot blockModel.ParkingSlotModel
	require.NoError(t, db.First(&slot, "slot_id = ?", slots[0].SlotID).Error)
	assert.False(t, slot.SlotIsOccupied)

	// complete kedua ditolak tanpa double-release
	_, err = svc.Complete(ctx, booking.BookingID.String(), in.UserID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 1, got.BlockAvailableSlots)
}

func TestPayAfterCompleteRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 2, blockModel.VehicleTypeCar)
	ctx := context.Background()

	inA := createInput(block, nil)
	bookingA, err := svc.Create(ctx, inA)
	require.NoError(t, err)
	_, err = svc.Create(ctx, createInput(block, nil))
	require.NoError(t, err)

	_, err = svc.Complete(ctx, bookingA.BookingID.String(), inA.UserID)
	require.NoError(t, err)

	// pay di booking yang sudah selesai ditolak; jalur complete-pay-complete
	// tidak boleh mengkredit block dua kali
	_, _, _, err = svc.Pay(ctx, bookingA.BookingID.String(), inA.UserID, "Budi", "budi@example.com")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	_, err = svc.Complete(ctx, bookingA.BookingID.String(), inA.UserID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	var got blockModel.ParkingBlockModel
	require.NoError(t, db.First(&got, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 1, got.BlockAvailableSlots) // booking kedua masih memegang slot

	// pay di booking CONFIRMED juga ditolak
	inB := createInput(block, nil)
	bookingB, err := svc.Create(ctx, inB)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, bookingB.BookingID.String(), inB.UserID)
	require.NoError(t, err)
	_, _, _, err = svc.Pay(ctx, bookingB.BookingID.String(), inB.UserID, "Budi", "budi@example.com")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestBookingOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 2, blockModel.VehicleTypeCar)
	ctx := context.Background()

	in := createInput(block, nil)
	booking, err := svc.Create(ctx, in)
	require.NoError(t, err)

	// pemilik bisa mengambil booking-nya
	got, err := svc.Get(ctx, booking.BookingCode, in.UserID)
	require.NoError(t, err)
	assert.Equal(t, booking.BookingID, got.BookingID)

	// user lain ditolak di semua operasi lifecycle
	stranger := uuid.New()
	_, err = svc.Get(ctx, booking.BookingID.String(), stranger)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	_, _, _, err = svc.Pay(ctx, booking.BookingID.String(), stranger, "Budi", "budi@example.com")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	_, err = svc.Confirm(ctx, booking.BookingID.String(), stranger)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	_, err = svc.Complete(ctx, booking.BookingID.String(), stranger)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// penolakan tidak menyentuh counter
	var gotBlock blockModel.ParkingBlockModel
	require.NoError(t, db.First(&gotBlock, "block_id = ?", block.BlockID).Error)
	assert.Equal(t, 1, gotBlock.BlockAvailableSlots)
}

func TestBookingNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)

	_, err := svc.Confirm(context.Background(), uuid.New().String(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	_, err = svc.Confirm(context.Background(), "BOOK-999", uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestDashboardFilterAndStats(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 5, blockModel.VehicleTypeCar)
	ctx := context.Background()

	userA := uuid.New()
	for i := 0; i < 3; i++ {
		in := createInput(block, nil)
		if i == 0 {
			in.UserID = userA
			in.PaymentStatus = model.PaymentStatusPaid
		}
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	bookings, total, stats, err := svc.Dashboard(ctx, DashboardFilter{}, paging(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, bookings, 2)
	assert.Equal(t, int64(3), stats.Total.Bookings)
	assert.Equal(t, int64(3*300), stats.Total.Revenue)

	_, total, _, err = svc.Dashboard(ctx, DashboardFilter{PaymentStatus: model.PaymentStatusPaid}, paging(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, _, err = svc.Dashboard(ctx, DashboardFilter{UserID: userA.String()}, paging(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestPaymentWebhookSettlement(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 1, blockModel.VehicleTypeCar)
	ctx := context.Background()

	in := createInput(block, nil)
	in.PaymentStatus = model.PaymentStatusUnpaid
	booking, err := svc.Create(ctx, in)
	require.NoError(t, err)

	orderID := booking.BookingCode + "-abc123"
	require.NoError(t, db.Model(&model.BookingModel{}).
		Where("booking_id = ?", booking.BookingID).
		Update("booking_order_id", orderID).Error)

	err = HandleBookingPaymentWebhook(db, map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": "settlement",
	})
	require.NoError(t, err)

	var got model.BookingModel
	require.NoError(t, db.First(&got, "booking_id = ?", booking.BookingID).Error)
	assert.Equal(t, model.PaymentStatusPaid, got.BookingPaymentStatus)

	// status pending (mis. "pending") tidak mengubah apa pun
	require.NoError(t, HandleBookingPaymentWebhook(db, map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": "pending",
	}))
	require.NoError(t, db.First(&got, "booking_id = ?", booking.BookingID).Error)
	assert.Equal(t, model.PaymentStatusPaid, got.BookingPaymentStatus)

	// payload tidak lengkap / order tak dikenal → error
	assert.Error(t, HandleBookingPaymentWebhook(db, map[string]interface{}{"order_id": orderID}))
	assert.Error(t, HandleBookingPaymentWebhook(db, map[string]interface{}{
		"order_id":           "BOOK-999-zzz",
		"transaction_status": "settlement",
	}))
}

func TestListByUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db, nil)
	block, _ := seedBlock(t, db, 5, blockModel.VehicleTypeCar)
	ctx := context.Background()

	in := createInput(block, nil)
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)
	_, err = svc.Create(ctx, createInput(block, nil))
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, in.UserID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
