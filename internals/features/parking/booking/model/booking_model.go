package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	PaymentStatusPaid   = "PAID"
	PaymentStatusUnpaid = "UNPAID"

	BookingTypeOnline = "ONLINE"
	BookingTypeWalkIn = "WALK_IN"

	StatusPending   = "PENDING"
	StatusPay       = "PAY"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
)

// BookingTypeFor menurunkan tipe booking dari payment status:
// PAID → ONLINE, UNPAID → WALK_IN.
func BookingTypeFor(paymentStatus string) string {
	if paymentStatus == PaymentStatusPaid {
		return BookingTypeOnline
	}
	return BookingTypeWalkIn
}

/* ===================== Model ===================== */

type BookingModel struct {
	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Kode berurutan human-readable: BOOK-001, BOOK-002, ...
	BookingCode string `gorm:"column:booking_code;type:varchar(20);not null;unique" json:"bookingId"`

	BookingUserID  uuid.UUID  `gorm:"column:booking_user_id;type:uuid;not null;index" json:"userId"`
	BookingBlockID uuid.UUID  `gorm:"column:booking_block_id;type:uuid;not null;index" json:"blockId"`
	BookingSlotID  *uuid.UUID `gorm:"column:booking_slot_id;type:uuid" json:"slotId,omitempty"`

	BookingPaymentStatus string `gorm:"column:booking_payment_status;type:varchar(10);not null" json:"paymentStatus"`
	BookingType          string `gorm:"column:booking_type;type:varchar(10);not null" json:"bookingType"`
	BookingStatus        string `gorm:"column:booking_status;type:varchar(10);not null;default:'PENDING'" json:"status"`

	// Durasi dalam jam, dibulatkan ke atas; amount = durasi × tarif per jam.
	// TrackTime menyimpan rentang persisnya dalam menit, tanpa pembulatan.
	BookingDurationHours int `gorm:"column:booking_duration_hours;not null" json:"duration"`
	BookingTrackTime     int `gorm:"column:booking_track_time;not null;default:0" json:"trackTime"`
	BookingAmount        int `gorm:"column:booking_amount;not null;default:0" json:"amount"`

	BookingEntryTime time.Time      `gorm:"column:booking_entry_time;not null" json:"entryTime"`
	BookingExitTime  time.Time      `gorm:"column:booking_exit_time;not null" json:"exitTime"`
	BookingDate      datatypes.Date `gorm:"column:booking_date;not null" json:"date"`

	// Artefak gateway pembayaran (booking ONLINE).
	BookingOrderID      *string `gorm:"column:booking_order_id;type:varchar(100);unique" json:"orderId,omitempty"`
	BookingPaymentToken *string `gorm:"column:booking_payment_token;type:text" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BookingModel) TableName() string {
	return "bookings"
}

func (b *BookingModel) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	return nil
}
