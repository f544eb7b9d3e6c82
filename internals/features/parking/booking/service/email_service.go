package service

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"

	"parkirku_backend/internals/configs"
)

// Mailer: kontrak notifier booking. Best-effort — pemanggil tidak boleh
// menggagalkan booking karena email gagal.
type Mailer interface {
	SendBookingEmail(toEmail, bookingCode string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer membaca konfigurasi SMTP dari configs; nil bila belum diset
// (email konfirmasi di-skip, booking tetap jalan). Return type interface,
// bukan *SMTPMailer: pointer nil yang dibungkus interface lolos cek != nil.
func NewSMTPMailer() Mailer {
	if configs.SMTPHost == "" || configs.SMTPUser == "" {
		log.Println("⚠️ SMTP tidak dikonfigurasi, booking email dinonaktifkan")
		return nil
	}
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPass),
		from:   configs.SMTPFrom,
	}
}

func (m *SMTPMailer) SendBookingEmail(toEmail, bookingCode string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Parking Booking Confirmed")
	msg.SetBody("text/html", bookingEmailBody(bookingCode))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}
	log.Printf("✅ Email sent to %s", toEmail)
	return nil
}

func bookingEmailBody(bookingCode string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px; }
  .header { background: #3B82F6; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0; }
  .booking-id { background: #F3F4F6; padding: 15px; border-radius: 5px; text-align: center; font-size: 18px; font-weight: bold; }
  .footer { text-align: center; margin-top: 20px; color: #6B7280; font-size: 14px; }
</style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Booking Confirmed ✅</h1></div>
    <div class="content">
      <p>Dear Valued Customer,</p>
      <p>Your parking booking has been successfully confirmed. Here are your booking details:</p>
      <div class="booking-id">Booking ID: %s</div>
      <p>Please keep this Booking ID safe as you'll need it for entry and exit.</p>
      <p>If you have any questions, please contact our support team.</p>
    </div>
    <div class="footer">
      <p>Thank you for choosing Smart Parking!</p>
      <p>© %d Smart Parking. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`, bookingCode, time.Now().Year())
}
