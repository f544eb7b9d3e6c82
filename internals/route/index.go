// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blockRoute "parkirku_backend/internals/features/parking/block/route"
	bookingRoute "parkirku_backend/internals/features/parking/booking/route"
	locationRoute "parkirku_backend/internals/features/parking/location/route"
	authRoute "parkirku_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PARKING (ADMIN + PUBLIC) =====================
	log.Println("[INFO] Setting up ParkingLocationRoutes...")
	locationRoute.ParkingLocationRoutes(app, db)

	log.Println("[INFO] Setting up ParkingBlockRoutes...")
	blockRoute.ParkingBlockRoutes(app, db)

	// ===================== BOOKING / DASHBOARD / WEBHOOK =====================
	log.Println("[INFO] Setting up BookingRoutes...")
	bookingRoute.BookingRoutes(app, db)
}
