package dto

import (
	"time"

	"github.com/google/uuid"

	m "parkirku_backend/internals/features/parking/booking/model"
)

/* =============== REQUESTS =============== */

type CreateBookingRequest struct {
	BlockID       uuid.UUID  `json:"blockId"       validate:"required"`
	SlotID        *uuid.UUID `json:"slotId"        validate:"omitempty"`
	EntryTime     time.Time  `json:"entryTime"     validate:"required"`
	ExitTime      time.Time  `json:"exitTime"      validate:"required"`
	PaymentStatus string     `json:"paymentStatus" validate:"required,oneof=PAID UNPAID"`
	Date          string     `json:"date"          validate:"required,datetime=2006-01-02"`
}

/* =============== RESPONSES =============== */

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     string     `json:"bookingId"`
	UserID        uuid.UUID  `json:"userId"`
	BlockID       uuid.UUID  `json:"blockId"`
	SlotID        *uuid.UUID `json:"slotId,omitempty"`
	PaymentStatus string     `json:"paymentStatus"`
	BookingType   string     `json:"bookingType"`
	Status        string     `json:"status"`
	Duration      int        `json:"duration"`
	TrackTime     int        `json:"trackTime"`
	Amount        int        `json:"amount"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      time.Time  `json:"exitTime"`
	Date          string     `json:"date"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromBookingModel(b m.BookingModel) BookingResponse {
	return BookingResponse{
		ID:            b.BookingID,
		BookingID:     b.BookingCode,
		UserID:        b.BookingUserID,
		BlockID:       b.BookingBlockID,
		SlotID:        b.BookingSlotID,
		PaymentStatus: b.BookingPaymentStatus,
		BookingType:   b.BookingType,
		Status:        b.BookingStatus,
		Duration:      b.BookingDurationHours,
		TrackTime:     b.BookingTrackTime,
		Amount:        b.BookingAmount,
		EntryTime:     b.BookingEntryTime,
		ExitTime:      b.BookingExitTime,
		Date:          time.Time(b.BookingDate).Format("2006-01-02"),
		CreatedAt:     b.CreatedAt,
	}
}

// PayResponse: hasil transisi ke PAY; token/redirect terisi untuk booking ONLINE.
type PayResponse struct {
	Booking     BookingResponse `json:"booking"`
	SnapToken   string          `json:"snapToken,omitempty"`
	RedirectURL string          `json:"redirectUrl,omitempty"`
}

/* =============== DASHBOARD =============== */

type StatusCount struct {
	Status string `json:"status" gorm:"column:status"`
	Count  int64  `json:"count"  gorm:"column:count"`
}

type PaymentStatusStat struct {
	PaymentStatus string `json:"paymentStatus" gorm:"column:payment_status"`
	Count         int64  `json:"count"         gorm:"column:count"`
	Amount        int64  `json:"amount"        gorm:"column:amount"`
}

type TotalStats struct {
	Bookings      int64 `json:"bookings"      gorm:"column:bookings"`
	Revenue       int64 `json:"revenue"       gorm:"column:revenue"`
	TotalDuration int64 `json:"totalDuration" gorm:"column:total_duration"`
}

type DashboardStatistics struct {
	Total           TotalStats          `json:"total"`
	ByStatus        []StatusCount       `json:"byStatus"`
	ByPaymentStatus []PaymentStatusStat `json:"byPaymentStatus"`
}
