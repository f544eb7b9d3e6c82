package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "parkirku_backend/internals/features/parking/booking/dto"
	service "parkirku_backend/internals/features/parking/booking/service"
	helper "parkirku_backend/internals/helpers"
)

type BookingController struct {
	Service  *service.BookingService
	Validate *validator.Validate
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		Service:  service.NewBookingService(db, service.NewSMTPMailer()),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/user/bookings
func (ctrl *BookingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userEmail, _ := c.Locals("user_email").(string)

	booking, err := ctrl.Service.Create(c.Context(), service.CreateBookingInput{
		UserID:        userID,
		UserEmail:     userEmail,
		BlockID:       req.BlockID,
		SlotID:        req.SlotID,
		EntryTime:     req.EntryTime,
		ExitTime:      req.ExitTime,
		PaymentStatus: req.PaymentStatus,
		Date:          req.Date,
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Booking created successfully", dto.FromBookingModel(*booking))
}

// 🟢 GET /api/user/bookings
func (ctrl *BookingController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	bookings, err := ctrl.Service.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.FromBookingModel(b))
	}
	return helper.JsonOK(c, "", resp)
}

// 🟢 GET /api/user/bookings/:id
func (ctrl *BookingController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	booking, err := ctrl.Service.Get(c.Context(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromBookingModel(*booking))
}

// 🟡 PATCH /api/user/bookings/:id/pay
func (ctrl *BookingController) Pay(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userName, _ := c.Locals("user_name").(string)
	userEmail, _ := c.Locals("user_email").(string)

	booking, token, redirect, err := ctrl.Service.Pay(c.Context(), c.Params("id"), userID, userName, userEmail)
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Booking moved to payment", dto.PayResponse{
		Booking:     dto.FromBookingModel(*booking),
		SnapToken:   token,
		RedirectURL: redirect,
	})
}

// 🟡 PATCH /api/user/bookings/:id/confirm
func (ctrl *BookingController) Confirm(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	booking, err := ctrl.Service.Confirm(c.Context(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Booking confirmed successfully", dto.FromBookingModel(*booking))
}

// 🟡 PATCH /api/user/bookings/:id/complete
func (ctrl *BookingController) Complete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	booking, err := ctrl.Service.Complete(c.Context(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Booking completed successfully", dto.FromBookingModel(*booking))
}
