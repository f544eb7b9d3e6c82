// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	controller "parkirku_backend/internals/features/users/auth/controller"
	rateLimiter "parkirku_backend/internals/middlewares"
	authMiddleware "parkirku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔒 Private (bearer token)
	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/user", authController.Me)
	protected.Put("/user-update", authController.UpdateProfile)
	protected.Get("/logout", authController.Logout)
}
