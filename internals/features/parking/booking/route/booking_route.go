package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	controller "parkirku_backend/internals/features/parking/booking/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func BookingRoutes(app *fiber.App, db *gorm.DB) {
	bookingController := controller.NewBookingController(db)
	dashboardController := controller.NewDashboardController(db)
	webhookController := controller.NewPaymentWebhookController(db)

	// 🔒 User: /api/user/bookings
	user := app.Group("/api/user/bookings", authMiddleware.AuthMiddleware(db))
	user.Post("/new", bookingController.Create)
	user.Get("/", bookingController.ListMine)
	user.Get("/:id", bookingController.GetByID)
	user.Patch("/:id/pay", bookingController.Pay)
	user.Patch("/:id/confirm", bookingController.Confirm)
	user.Patch("/:id/complete", bookingController.Complete)

	// 🔒 Admin: statistik booking
	admin := app.Group("/api/admin/dashboard",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("dashboard"), constants.RoleAdmin),
	)
	admin.Get("/", dashboardController.Statistics)

	// 🔓 Webhook Midtrans (tanpa auth, Midtrans yang memanggil)
	app.Post("/api/payments/notification", webhookController.HandleNotification)
}
