package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/booking/model"
)

// HandleBookingPaymentWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleBookingPaymentWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var booking model.BookingModel
	if err := db.Where("booking_order_id = ?", orderID).First(&booking).Error; err != nil {
		log.Println("[ERROR] Booking tidak ditemukan:", err)
		return fmt.Errorf("booking with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		booking.BookingPaymentStatus = model.PaymentStatusPaid
	case "expire", "cancel", "deny":
		// Pembayaran gagal, booking kembali menunggu pembayaran manual.
		booking.BookingPaymentStatus = model.PaymentStatusUnpaid
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&booking).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status pembayaran booking:", err)
		return err
	}

	return nil
}
