package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/users/auth/service"
	dto "parkirku_backend/internals/features/users/user/dto"
	userModel "parkirku_backend/internals/features/users/user/model"
	helper "parkirku_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ======================= REGISTER ======================= */
// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidRole(req.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid role value: "+req.Role)
	}

	var existing userModel.UserModel
	err := ac.DB.Where("user_email = ?", req.Email).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.TranslateDBError(err)
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: hash,
		UserRole:     req.Role,
	}
	if constants.IsVehicleRole(req.Role) {
		for _, v := range req.Vehicles {
			user.Vehicles = append(user.Vehicles, v.ToModel(user.UserID))
		}
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return helper.TranslateDBError(err)
	}

	return sendTokenResponse(c, fiber.StatusCreated, user)
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide email and password")
	}

	var user userModel.UserModel
	if err := ac.DB.Preload("Vehicles").Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama untuk email tak dikenal & password salah
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.TranslateDBError(err)
	}

	if err := service.CheckPasswordHash(user.UserPassword, req.Password); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	return sendTokenResponse(c, fiber.StatusOK, user)
}

/* ======================= ME ======================= */
// GET /api/auth/user
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.Preload("Vehicles").First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return helper.TranslateDBError(err)
	}

	return helper.JsonOK(c, "", dto.FromUserModel(user))
}

/* ======================= UPDATE PROFILE ======================= */
// PUT /api/auth/user-update
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.Preload("Vehicles").First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return helper.TranslateDBError(err)
	}

	if req.Email != nil && *req.Email != user.UserEmail {
		var other userModel.UserModel
		err := ac.DB.Where("user_email = ? AND user_id <> ?", *req.Email, userID).First(&other).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.TranslateDBError(err)
		}
		user.UserEmail = *req.Email
	}
	if req.Name != nil {
		user.UserName = *req.Name
	}
	if req.Role != nil {
		if !constants.IsValidRole(*req.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid role value: "+*req.Role)
		}
		user.UserRole = *req.Role
	}

	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"user_name":  user.UserName,
				"user_email": user.UserEmail,
				"user_role":  user.UserRole,
			}).Error; err != nil {
			return err
		}

		// Kendaraan diganti wholesale untuk role pembawa kendaraan, selain itu dihapus.
		if constants.IsVehicleRole(user.UserRole) {
			if req.Vehicles != nil {
				if err := tx.Where("vehicle_user_id = ?", userID).Delete(&userModel.VehicleModel{}).Error; err != nil {
					return err
				}
				for _, v := range *req.Vehicles {
					vm := v.ToModel(userID)
					if err := tx.Create(&vm).Error; err != nil {
						return err
					}
				}
			}
		} else {
			if err := tx.Where("vehicle_user_id = ?", userID).Delete(&userModel.VehicleModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return helper.TranslateDBError(txErr)
	}

	var updated userModel.UserModel
	if err := ac.DB.Preload("Vehicles").First(&updated, "user_id = ?", userID).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	return helper.JsonUpdated(c, "", dto.FromUserModel(updated))
}

/* ======================= LOGOUT ======================= */
// GET /api/auth/logout — token dipegang klien, server cukup balas OK.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "none",
		Expires:  time.Now().Add(10 * time.Second),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "", []string{})
}

// sendTokenResponse membalas user tersanitasi + access token (shape login/register).
func sendTokenResponse(c *fiber.Ctx, status int, user userModel.UserModel) error {
	token, err := helper.GenerateToken(user.UserID, configs.JWTSecret, tokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return c.Status(status).JSON(fiber.Map{
		"success":    true,
		"statusCode": status,
		"user":       dto.FromUserModel(user),
		"token":      token,
	})
}
