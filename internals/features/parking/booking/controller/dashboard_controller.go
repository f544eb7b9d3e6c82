package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "parkirku_backend/internals/features/parking/booking/dto"
	service "parkirku_backend/internals/features/parking/booking/service"
	helper "parkirku_backend/internals/helpers"
)

type DashboardController struct {
	Service *service.BookingService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewBookingService(db, nil)}
}

// 🟢 GET /api/admin/dashboard
// Filter via query: status, paymentStatus, date, userId, bookingType + page/limit.
func (ctrl *DashboardController) Statistics(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := service.DashboardFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		Date:          c.Query("date"),
		UserID:        c.Query("userId"),
		BookingType:   c.Query("bookingType"),
	}

	bookings, total, stats, err := ctrl.Service.Dashboard(c.Context(), filter, paging)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.FromBookingModel(b))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"bookings":   resp,
		"pagination": helper.BuildPagination(total, paging),
		"statistics": stats,
	})
}
