package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "parkirku_backend/internals/features/parking/block/dto"
	model "parkirku_backend/internals/features/parking/block/model"
	locationModel "parkirku_backend/internals/features/parking/location/model"
	helper "parkirku_backend/internals/helpers"
)

type ParkingBlockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParkingBlockController(db *gorm.DB) *ParkingBlockController {
	return &ParkingBlockController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/admin/parking/blocks/:locationId/new
func (h *ParkingBlockController) Create(c *fiber.Ctx) error {
	locationID := c.Params("locationId")

	var location locationModel.ParkingLocationModel
	if err := h.DB.First(&location, "location_id = ?", locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking location not found")
		}
		return helper.TranslateDBError(err)
	}

	var req dto.CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.BlockName == "" || req.TotalSlots == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide blockName and totalSlots")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.VehicleType == "" {
		req.VehicleType = model.VehicleTypeCar
	}

	block := model.ParkingBlockModel{
		BlockLocationID:     location.LocationID,
		BlockName:           req.BlockName,
		BlockTotalSlots:     req.TotalSlots,
		BlockAvailableSlots: req.TotalSlots,
		BlockVehicleType:    req.VehicleType,
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&block).Error; err != nil {
			return err
		}
		// Slot dibuat 1..totalSlots mengikuti kapasitas block.
		for n := 1; n <= req.TotalSlots; n++ {
			slot := model.ParkingSlotModel{
				SlotBlockID: block.BlockID,
				SlotNumber:  n,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.TranslateDBError(txErr)
	}

	return helper.JsonCreated(c, "Parking block added successfully", nil)
}

/* ======================= LIST BY LOCATION ======================= */
// GET /api/admin/parking/blocks/:locationId
func (h *ParkingBlockController) ListByLocation(c *fiber.Ctx) error {
	locationID := c.Params("locationId")

	var location locationModel.ParkingLocationModel
	if err := h.DB.First(&location, "location_id = ?", locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking location not found")
		}
		return helper.TranslateDBError(err)
	}

	var blocks []model.ParkingBlockModel
	if err := h.DB.Where("block_location_id = ?", location.LocationID).Find(&blocks).Error; err != nil {
		return helper.TranslateDBError(err)
	}

	out := make([]dto.BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp := dto.FromBlockModel(b)

		var slots []model.ParkingSlotModel
		if err := h.DB.Where("slot_block_id = ?", b.BlockID).
			Order("slot_number").Find(&slots).Error; err != nil {
			return helper.TranslateDBError(err)
		}
		resp.Slots = make([]dto.SlotResponse, 0, len(slots))
		for _, s := range slots {
			resp.Slots = append(resp.Slots, dto.FromSlotModel(s))
		}

		out = append(out, resp)
	}

	return helper.JsonOK(c, "", out)
}

/* ======================= GET BY ID ======================= */
// GET /api/user/block/:id — detail satu block + slot-nya, untuk pemilihan
// slot saat booking.
func (h *ParkingBlockController) GetByID(c *fiber.Ctx) error {
	blockID := c.Params("id")

	var block model.ParkingBlockModel
	if err := h.DB.First(&block, "block_id = ?", blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking block not found")
		}
		return helper.TranslateDBError(err)
	}

	resp := dto.FromBlockModel(block)

	var slots []model.ParkingSlotModel
	if err := h.DB.Where("slot_block_id = ?", block.BlockID).
		Order("slot_number").Find(&slots).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	resp.Slots = make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp.Slots = append(resp.Slots, dto.FromSlotModel(s))
	}

	return helper.JsonOK(c, "", resp)
}

/* ======================= UPDATE ======================= */
// PUT /api/admin/parking/blocks/:blockId
func (h *ParkingBlockController) Update(c *fiber.Ctx) error {
	blockID := c.Params("blockId")

	var block model.ParkingBlockModel
	if err := h.DB.First(&block, "block_id = ?", blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking block not found")
		}
		return helper.TranslateDBError(err)
	}

	var req dto.UpdateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.BlockName == nil && req.TotalSlots == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide blockName or totalSlots to update")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.BlockName != nil {
		block.BlockName = *req.BlockName
	}

	oldTotal := block.BlockTotalSlots
	if req.TotalSlots != nil {
		block.ApplyTotalSlots(*req.TotalSlots)
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&block).Error; err != nil {
			return err
		}

		if req.TotalSlots == nil || *req.TotalSlots == oldTotal {
			return nil
		}

		if *req.TotalSlots > oldTotal {
			// Tambah slot baru di ujung.
			for n := oldTotal + 1; n <= *req.TotalSlots; n++ {
				slot := model.ParkingSlotModel{
					SlotBlockID: block.BlockID,
					SlotNumber:  n,
				}
				if err := tx.Create(&slot).Error; err != nil {
					return err
				}
			}
			return nil
		}

		// Ciutkan: buang slot kosong dari nomor terbesar; slot terisi dibiarkan.
		excess := oldTotal - *req.TotalSlots
		var removable []model.ParkingSlotModel
		if err := tx.Where("slot_block_id = ? AND slot_is_occupied = ?", block.BlockID, false).
			Order("slot_number DESC").
			Limit(excess).
			Find(&removable).Error; err != nil {
			return err
		}
		for _, s := range removable {
			if err := tx.Delete(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.TranslateDBError(txErr)
	}

	return helper.JsonUpdated(c, "Parking block updated successfully", dto.FromBlockModel(block))
}

/* ======================= DELETE ======================= */
// DELETE /api/admin/parking/blocks/:blockId
func (h *ParkingBlockController) Delete(c *fiber.Ctx) error {
	blockID := c.Params("blockId")

	var block model.ParkingBlockModel
	if err := h.DB.First(&block, "block_id = ?", blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parking block not found")
		}
		return helper.TranslateDBError(err)
	}

	var occupied int64
	if err := h.DB.Model(&model.ParkingSlotModel{}).
		Where("slot_block_id = ? AND slot_is_occupied = ?", block.BlockID, true).
		Count(&occupied).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	if occupied > 0 {
		return fiber.NewError(fiber.StatusConflict, "Parking block still has occupied slots")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_block_id = ?", block.BlockID).
			Delete(&model.ParkingSlotModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&block).Error
	})
	if txErr != nil {
		return helper.TranslateDBError(txErr)
	}

	return helper.JsonDeleted(c, "Parking block deleted successfully", nil)
}
