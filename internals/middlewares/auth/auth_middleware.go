// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	userModel "parkirku_backend/internals/features/users/user/model"
	helper "parkirku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token lalu memuat user dari DB.
// Klaim dasar disimpan di Locals: user_id, userRole, user_email, user_name.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		userID, err := helper.VerifyToken(tokenString, secretKey)
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		var user userModel.UserModel
		if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return helper.TranslateDBError(err)
		}

		c.Locals("user_id", user.UserID.String())
		c.Locals("userRole", user.UserRole)
		c.Locals("user_email", user.UserEmail)
		c.Locals("user_name", user.UserName)

		return c.Next()
	}
}
