package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blockModel "parkirku_backend/internals/features/parking/block/model"
)

type captureMailer struct {
	sent chan string
}

func (m *captureMailer) SendBookingEmail(toEmail, bookingCode string) error {
	m.sent <- toEmail + "|" + bookingCode
	return nil
}

func TestNewSMTPMailerUnconfigured(t *testing.T) {
	// env SMTP tidak diset saat test: konstruktor harus mengembalikan
	// interface nil beneran, bukan pointer nil yang terbungkus interface
	m := NewSMTPMailer()
	assert.Nil(t, m)

	svc := NewBookingService(openTestDB(t), m)
	assert.False(t, svc.Mailer != nil)
}

func TestCreateBookingEmailDispatch(t *testing.T) {
	db := openTestDB(t)
	block, _ := seedBlock(t, db, 2, blockModel.VehicleTypeCar)
	ctx := context.Background()

	// mailer kosong (SMTP tidak dikonfigurasi): create dengan email user
	// tetap jalan tanpa percobaan kirim
	svc := NewBookingService(db, NewSMTPMailer())
	in := createInput(block, nil)
	in.UserEmail = "budi@example.com"
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	// mailer terpasang: email konfirmasi dikirim async ke user
	mailer := &captureMailer{sent: make(chan string, 1)}
	svc = NewBookingService(db, mailer)
	in = createInput(block, nil)
	in.UserEmail = "siti@example.com"
	booking, err := svc.Create(ctx, in)
	require.NoError(t, err)

	select {
	case got := <-mailer.sent:
		assert.Equal(t, "siti@example.com|"+booking.BookingCode, got)
	case <-time.After(2 * time.Second):
		t.Fatal("booking email tidak terkirim")
	}
}
