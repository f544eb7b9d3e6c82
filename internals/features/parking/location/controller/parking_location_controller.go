package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blockModel "parkirku_backend/internals/features/parking/block/model"
	bookingModel "parkirku_backend/internals/features/parking/booking/model"
	dto "parkirku_backend/internals/features/parking/location/dto"
	model "parkirku_backend/internals/features/parking/location/model"
	userModel "parkirku_backend/internals/features/users/user/model"
	helper "parkirku_backend/internals/helpers"
)

type ParkingLocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParkingLocationController(db *gorm.DB) *ParkingLocationController {
	return &ParkingLocationController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/admin/parking/new
func (h *ParkingLocationController) Create(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Address == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide name and address")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Maksimal satu lokasi system-wide.
	var count int64
	if err := h.DB.Model(&model.ParkingLocationModel{}).Count(&count).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "A parking location already exists")
	}

	location := model.ParkingLocationModel{
		LocationName:      req.Name,
		LocationAddress:   req.Address,
		LocationCreatedBy: adminID,
	}
	if err := h.DB.Create(&location).Error; err != nil {
		return helper.TranslateDBError(err)
	}

	return helper.JsonCreated(c, "Parking location added successfully", nil)
}

/* ======================= LIST ======================= */
// GET /api/admin/parking
func (h *ParkingLocationController) List(c *fiber.Ctx) error {
	var locations []model.ParkingLocationModel
	if err := h.DB.Find(&locations).Error; err != nil {
		return helper.TranslateDBError(err)
	}

	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp := dto.FromLocationModel(l)

		var admin userModel.UserModel
		if err := h.DB.Select("user_id", "user_name", "user_email").
			First(&admin, "user_id = ?", l.LocationCreatedBy).Error; err == nil {
			resp.Admin = &dto.AdminSummary{
				ID:    admin.UserID,
				Name:  admin.UserName,
				Email: admin.UserEmail,
			}
		}
		out = append(out, resp)
	}

	return helper.JsonOK(c, "", out)
}

/* ======================= UPDATE ======================= */
// PUT /api/admin/parking/:id
func (h *ParkingLocationController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var location model.ParkingLocationModel
	if err := h.DB.First(&location, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking location not found")
		}
		return helper.TranslateDBError(err)
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == nil && req.Address == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide name or address to update")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		location.LocationName = *req.Name
	}
	if req.Address != nil {
		location.LocationAddress = *req.Address
	}
	if err := h.DB.Save(&location).Error; err != nil {
		return helper.TranslateDBError(err)
	}

	return helper.JsonUpdated(c, "Parking location updated successfully", dto.FromLocationModel(location))
}

/* ======================= DELETE ======================= */
// DELETE /api/admin/parking/:id
// Cascade eksplisit: slot → block → lokasi, ditolak bila masih ada booking aktif.
func (h *ParkingLocationController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var location model.ParkingLocationModel
	if err := h.DB.First(&location, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking location not found")
		}
		return helper.TranslateDBError(err)
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var blockIDs []string
		if err := tx.Model(&blockModel.ParkingBlockModel{}).
			Where("block_location_id = ?", location.LocationID).
			Pluck("block_id", &blockIDs).Error; err != nil {
			return err
		}

		if len(blockIDs) > 0 {
			var active int64
			if err := tx.Model(&bookingModel.BookingModel{}).
				Where("booking_block_id IN ? AND booking_status <> ?", blockIDs, bookingModel.StatusCompleted).
				Count(&active).Error; err != nil {
				return err
			}
			if active > 0 {
				return fiber.NewError(fiber.StatusConflict, "Parking location still has active bookings")
			}

			if err := tx.Where("slot_block_id IN ?", blockIDs).
				Delete(&blockModel.ParkingSlotModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("block_location_id = ?", location.LocationID).
				Delete(&blockModel.ParkingBlockModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&location).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return helper.TranslateDBError(txErr)
	}

	return helper.JsonDeleted(c, "Parking location deleted successfully", []string{})
}

/* ======================= PUBLIC LIST ======================= */
// GET /api/user/parkings — lokasi + block yang belum penuh.
func (h *ParkingLocationController) PublicList(c *fiber.Ctx) error {
	var locations []model.ParkingLocationModel
	if err := h.DB.Find(&locations).Error; err != nil {
		return helper.TranslateDBError(err)
	}

	out := make([]dto.PublicParkingResponse, 0, len(locations))
	for _, l := range locations {
		var blocks []blockModel.ParkingBlockModel
		if err := h.DB.Where("block_location_id = ? AND block_is_full = ?", l.LocationID, false).
			Find(&blocks).Error; err != nil {
			return helper.TranslateDBError(err)
		}

		summaries := make([]dto.BlockSummary, 0, len(blocks))
		for _, b := range blocks {
			summaries = append(summaries, dto.FromBlockModel(b))
		}
		out = append(out, dto.PublicParkingResponse{
			ID:      l.LocationID,
			Name:    l.LocationName,
			Address: l.LocationAddress,
			Blocks:  summaries,
		})
	}

	return helper.JsonOK(c, "", out)
}
