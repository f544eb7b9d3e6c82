package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "parkirku_backend/internals/features/parking/booking/service"
)

type PaymentWebhookController struct {
	DB *gorm.DB
}

func NewPaymentWebhookController(db *gorm.DB) *PaymentWebhookController {
	return &PaymentWebhookController{DB: db}
}

// 🟢 POST /api/payments/notification
// Endpoint notifikasi Midtrans. Midtrans hanya butuh status 200 sebagai ack.
func (ctrl *PaymentWebhookController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook",
		})
	}

	log.Println("Received webhook:", body)

	if err := service.HandleBookingPaymentWebhook(ctrl.DB, body); err != nil {
		log.Println("[ERROR] Webhook gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
