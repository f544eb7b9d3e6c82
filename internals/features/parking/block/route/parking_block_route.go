package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	controller "parkirku_backend/internals/features/parking/block/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func ParkingBlockRoutes(app *fiber.App, db *gorm.DB) {
	blockController := controller.NewParkingBlockController(db)

	// 🔒 Admin: /api/admin/parking/blocks
	admin := app.Group("/api/admin/parking/blocks",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("block parkir"), constants.RoleAdmin),
	)
	admin.Post("/:locationId/new", blockController.Create)
	admin.Get("/:locationId", blockController.ListByLocation)
	admin.Put("/:blockId", blockController.Update)
	admin.Delete("/:blockId", blockController.Delete)

	// 🔓 Public: detail satu block + slot-nya
	app.Get("/api/user/block/:id", blockController.GetByID)
}
