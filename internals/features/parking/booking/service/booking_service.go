package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	blockModel "parkirku_backend/internals/features/parking/block/model"
	dto "parkirku_backend/internals/features/parking/booking/dto"
	model "parkirku_backend/internals/features/parking/booking/model"
	helper "parkirku_backend/internals/helpers"
)

// BookingService menjaga invariant kapasitas/occupancy lintas block, slot,
// dan booking. Semua mutasi lifecycle dibungkus satu transaksi all-or-nothing.
//
// Kebijakan debit: available slots didebit saat CREATE (bukan saat confirm),
// dan dikembalikan saat COMPLETE.
type BookingService struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewBookingService(db *gorm.DB, mailer Mailer) *BookingService {
	return &BookingService{DB: db, Mailer: mailer}
}

/* ======================= CREATE ======================= */

type CreateBookingInput struct {
	UserID        uuid.UUID
	UserEmail     string
	BlockID       uuid.UUID
	SlotID        *uuid.UUID
	EntryTime     time.Time
	ExitTime      time.Time
	PaymentStatus string
	Date          string // YYYY-MM-DD
}

func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*model.BookingModel, error) {
	if !in.ExitTime.After(in.EntryTime) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "exitTime must be after entryTime")
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	var booking model.BookingModel

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var block blockModel.ParkingBlockModel
		if err := tx.First(&block, "block_id = ?", in.BlockID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Parking block not found")
			}
			return err
		}

		if block.BlockAvailableSlots <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Parking block is full")
		}

		var slot *blockModel.ParkingSlotModel
		if in.SlotID != nil {
			var sl blockModel.ParkingSlotModel
			if err := tx.First(&sl, "slot_id = ?", *in.SlotID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Parking slot not found")
				}
				return err
			}
			if sl.SlotBlockID != block.BlockID {
				return fiber.NewError(fiber.StatusBadRequest, "Slot does not belong to this block")
			}
			if sl.SlotIsOccupied {
				return fiber.NewError(fiber.StatusBadRequest, "Parking slot is not available")
			}
			slot = &sl
		}

		// Kode berurutan dari booking terakhir. Lookup-lalu-insert ini bisa
		// menghasilkan kode duplikat di bawah penulis concurrent tanpa isolasi
		// serializable; unique constraint di booking_code jadi jaring terakhir.
		var last model.BookingModel
		lastCode := ""
		if err := tx.Order("created_at DESC").Limit(1).Find(&last).Error; err != nil {
			return err
		}
		if last.BookingID != uuid.Nil {
			lastCode = last.BookingCode
		}

		duration := CalcDurationHours(in.EntryTime, in.ExitTime)
		booking = model.BookingModel{
			BookingCode:          NextBookingCode(lastCode),
			BookingUserID:        in.UserID,
			BookingBlockID:       block.BlockID,
			BookingPaymentStatus: in.PaymentStatus,
			BookingType:          model.BookingTypeFor(in.PaymentStatus),
			BookingStatus:        model.StatusPending,
			BookingDurationHours: duration,
			BookingTrackTime:     int(in.ExitTime.Sub(in.EntryTime).Minutes()),
			BookingAmount:        duration * blockModel.HourlyRateFor(block.BlockVehicleType),
			BookingEntryTime:     in.EntryTime,
			BookingExitTime:      in.ExitTime,
			BookingDate:          datatypes.Date(date),
		}
		if slot != nil {
			booking.BookingSlotID = &slot.SlotID
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if slot != nil {
			slot.SlotIsOccupied = true
			if err := tx.Save(slot).Error; err != nil {
				return err
			}
		}

		block.BlockAvailableSlots--
		block.SyncFull()
		return tx.Save(&block).Error
	})
	if txErr != nil {
		return nil, asFiberError(txErr)
	}

	// Email konfirmasi best-effort: kegagalan hanya di-log, tidak membatalkan booking.
	if s.Mailer != nil && in.UserEmail != "" {
		go func(to, code string) {
			if err := s.Mailer.SendBookingEmail(to, code); err != nil {
				log.Printf("[ERROR] send booking email to %s: %v", to, err)
			}
		}(in.UserEmail, booking.BookingCode)
	}

	return &booking, nil
}

/* ======================= PAY ======================= */

// Pay transisi status → PAY. Untuk booking ONLINE sekaligus membuat transaksi
// Snap (token + redirect URL); kegagalan gateway tidak menggagalkan transisi.
// Booking yang sudah CONFIRMED/COMPLETED ditolak: mundur ke PAY akan membuka
// jalur complete kedua yang mengkredit kapasitas block dua kali.
func (s *BookingService) Pay(ctx context.Context, id string, userID uuid.UUID, userName, userEmail string) (*model.BookingModel, string, string, error) {
	booking, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, "", "", err
	}
	switch booking.BookingStatus {
	case model.StatusCompleted:
		return nil, "", "", fiber.NewError(fiber.StatusConflict, "Booking already completed")
	case model.StatusConfirmed:
		return nil, "", "", fiber.NewError(fiber.StatusConflict, "Booking already confirmed")
	}

	booking.BookingStatus = model.StatusPay

	snapToken, redirectURL := "", ""
	if booking.BookingType == model.BookingTypeOnline && booking.BookingOrderID == nil {
		orderID := booking.BookingCode + "-" + booking.BookingID.String()[:8]
		token, redirect, gerr := GenerateSnapToken(orderID, int64(booking.BookingAmount), userName, userEmail)
		if gerr != nil {
			log.Printf("[ERROR] snap transaction for %s: %v", booking.BookingCode, gerr)
		} else {
			booking.BookingOrderID = &orderID
			booking.BookingPaymentToken = &token
			snapToken, redirectURL = token, redirect
		}
	}

	if err := s.DB.WithContext(ctx).Save(booking).Error; err != nil {
		return nil, "", "", helper.TranslateDBError(err)
	}
	return booking, snapToken, redirectURL, nil
}

/* ======================= CONFIRM ======================= */

// Confirm transisi status → CONFIRMED. Counter tidak disentuh: debit
// kapasitas sudah terjadi saat create.
func (s *BookingService) Confirm(ctx context.Context, id string, userID uuid.UUID) (*model.BookingModel, error) {
	booking, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if booking.BookingStatus == model.StatusConfirmed {
		return nil, fiber.NewError(fiber.StatusConflict, "Booking already confirmed")
	}

	booking.BookingStatus = model.StatusConfirmed
	if err := s.DB.WithContext(ctx).Save(booking).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return booking, nil
}

/* ======================= COMPLETE ======================= */

// Complete transisi status → COMPLETED, mengembalikan 1 available slot ke
// block (clamp ke total) dan membebaskan slot — kebalikan debit saat create.
func (s *BookingService) Complete(ctx context.Context, id string, userID uuid.UUID) (*model.BookingModel, error) {
	booking, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if booking.BookingStatus == model.StatusCompleted {
		return nil, fiber.NewError(fiber.StatusConflict, "Booking already completed")
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking.BookingStatus = model.StatusCompleted
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		var block blockModel.ParkingBlockModel
		if err := tx.First(&block, "block_id = ?", booking.BookingBlockID).Error; err != nil {
			return err
		}
		if block.BlockAvailableSlots < block.BlockTotalSlots {
			block.BlockAvailableSlots++
		}
		block.SyncFull()
		if err := tx.Save(&block).Error; err != nil {
			return err
		}

		if booking.BookingSlotID != nil {
			if err := tx.Model(&blockModel.ParkingSlotModel{}).
				Where("slot_id = ?", *booking.BookingSlotID).
				Update("slot_is_occupied", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, asFiberError(txErr)
	}
	return booking, nil
}

/* ======================= QUERY ======================= */

// Get ambil satu booking milik user (by uuid atau kode).
func (s *BookingService) Get(ctx context.Context, id string, userID uuid.UUID) (*model.BookingModel, error) {
	return s.findOwned(ctx, id, userID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BookingModel, error) {
	var bookings []model.BookingModel
	if err := s.DB.WithContext(ctx).
		Where("booking_user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return bookings, nil
}

type DashboardFilter struct {
	Status        string
	PaymentStatus string
	Date          string
	UserID        string
	BookingType   string
}

func (f DashboardFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("booking_status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("booking_payment_status = ?", f.PaymentStatus)
	}
	if f.Date != "" {
		q = q.Where("booking_date = ?", f.Date)
	}
	if f.UserID != "" {
		q = q.Where("booking_user_id = ?", f.UserID)
	}
	if f.BookingType != "" {
		q = q.Where("booking_type = ?", f.BookingType)
	}
	return q
}

// Dashboard mengembalikan halaman booking terfilter + total count + statistik
// agregat (keseluruhan, per status, per payment status).
func (s *BookingService) Dashboard(ctx context.Context, filter DashboardFilter, paging helper.Paging) ([]model.BookingModel, int64, *dto.DashboardStatistics, error) {
	db := s.DB.WithContext(ctx)

	var total int64
	if err := filter.apply(db.Model(&model.BookingModel{})).Count(&total).Error; err != nil {
		return nil, 0, nil, helper.TranslateDBError(err)
	}

	var bookings []model.BookingModel
	if err := filter.apply(db.Model(&model.BookingModel{})).
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, nil, helper.TranslateDBError(err)
	}

	stats := &dto.DashboardStatistics{}

	if err := db.Model(&model.BookingModel{}).
		Select("COUNT(*) AS bookings, COALESCE(SUM(booking_amount), 0) AS revenue, COALESCE(SUM(booking_duration_hours), 0) AS total_duration").
		Scan(&stats.Total).Error; err != nil {
		return nil, 0, nil, helper.TranslateDBError(err)
	}

	if err := db.Model(&model.BookingModel{}).
		Select("booking_status AS status, COUNT(*) AS count").
		Group("booking_status").
		Scan(&stats.ByStatus).Error; err != nil {
		return nil, 0, nil, helper.TranslateDBError(err)
	}

	if err := db.Model(&model.BookingModel{}).
		Select("booking_payment_status AS payment_status, COUNT(*) AS count, COALESCE(SUM(booking_amount), 0) AS amount").
		Group("booking_payment_status").
		Scan(&stats.ByPaymentStatus).Error; err != nil {
		return nil, 0, nil, helper.TranslateDBError(err)
	}

	return bookings, total, stats, nil
}

/* ======================= Helpers ======================= */

// findOwned cari booking by row uuid atau by kode (BOOK-xxx), lalu pastikan
// booking milik user yang memanggil.
func (s *BookingService) findOwned(ctx context.Context, id string, userID uuid.UUID) (*model.BookingModel, error) {
	var booking model.BookingModel
	q := s.DB.WithContext(ctx)

	var err error
	if parsed, perr := uuid.Parse(id); perr == nil {
		err = q.First(&booking, "booking_id = ?", parsed).Error
	} else {
		err = q.First(&booking, "booking_code = ?", id).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return nil, helper.TranslateDBError(err)
	}
	if booking.BookingUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not have access to this booking")
	}
	return &booking, nil
}

func asFiberError(err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	return helper.TranslateDBError(err)
}
