package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	controller "parkirku_backend/internals/features/parking/location/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func ParkingLocationRoutes(app *fiber.App, db *gorm.DB) {
	locationController := controller.NewParkingLocationController(db)

	// 🔒 Admin: /api/admin/parking
	admin := app.Group("/api/admin/parking",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("lokasi parkir"), constants.RoleAdmin),
	)
	admin.Post("/new", locationController.Create)
	admin.Get("/", locationController.List)
	admin.Put("/:id", locationController.Update)
	admin.Delete("/:id", locationController.Delete)

	// 🔓 Public: daftar lokasi beserta block yang masih tersedia
	app.Get("/api/user/parkings", locationController.PublicList)
}
