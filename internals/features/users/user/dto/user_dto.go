package dto

import (
	"time"

	"github.com/google/uuid"

	m "parkirku_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type VehicleInput struct {
	PlateNo string `json:"plateNo" validate:"required,min=2,max=20"`
	Brand   string `json:"brand"   validate:"omitempty,max=50"`
	Model   string `json:"model"   validate:"omitempty,max=50"`
	Color   string `json:"color"   validate:"omitempty,max=30"`
}

func (v VehicleInput) ToModel(userID uuid.UUID) m.VehicleModel {
	return m.VehicleModel{
		VehicleUserID:  userID,
		VehiclePlateNo: v.PlateNo,
		VehicleBrand:   v.Brand,
		VehicleModel:   v.Model,
		VehicleColor:   v.Color,
	}
}

type RegisterRequest struct {
	Name     string         `json:"name"     validate:"required,min=3,max=50"`
	Email    string         `json:"email"    validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	Role     string         `json:"role"     validate:"required"`
	Vehicles []VehicleInput `json:"vehicles" validate:"omitempty,dive"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Update (partial)
type UpdateProfileRequest struct {
	Name     *string         `json:"name"     validate:"omitempty,min=3,max=50"`
	Email    *string         `json:"email"    validate:"omitempty,email"`
	Role     *string         `json:"role"     validate:"omitempty"`
	Vehicles *[]VehicleInput `json:"vehicles" validate:"omitempty,dive"`
}

/* =============== RESPONSES =============== */

type VehicleResponse struct {
	ID      uuid.UUID `json:"id"`
	PlateNo string    `json:"plateNo"`
	Brand   string    `json:"brand"`
	Model   string    `json:"model"`
	Color   string    `json:"color"`
}

type UserResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	Vehicles  []VehicleResponse `json:"vehicles"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromUserModel(u m.UserModel) UserResponse {
	vehicles := make([]VehicleResponse, 0, len(u.Vehicles))
	for _, v := range u.Vehicles {
		vehicles = append(vehicles, VehicleResponse{
			ID:      v.VehicleID,
			PlateNo: v.VehiclePlateNo,
			Brand:   v.VehicleBrand,
			Model:   v.VehicleModel,
			Color:   v.VehicleColor,
		})
	}
	return UserResponse{
		ID:        u.UserID,
		Name:      u.UserName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		Vehicles:  vehicles,
		CreatedAt: u.CreatedAt,
	}
}
