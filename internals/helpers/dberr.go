package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TranslateDBError memetakan error dari store ke error ber-status untuk klien.
// Detail internal tidak pernah bocor ke response; cukup pesan generik per kelas error.
func TranslateDBError(err error) *fiber.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			target := pgErr.ConstraintName
			if target == "" {
				target = "fields"
			}
			return fiber.NewError(fiber.StatusConflict, "Duplicate entry for "+target)
		case "23503": // foreign_key_violation
			return fiber.NewError(fiber.StatusBadRequest, "Foreign key constraint failed")
		case "23502": // not_null_violation
			return fiber.NewError(fiber.StatusBadRequest, "Missing required field: "+pgErr.ColumnName)
		}
	}

	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "duplicate key") || strings.Contains(low, "unique"):
		return fiber.NewError(fiber.StatusConflict, "Duplicate entry for fields")
	case strings.Contains(low, "foreign key"):
		return fiber.NewError(fiber.StatusBadRequest, "Foreign key constraint failed")
	case strings.Contains(low, "connection refused") || strings.Contains(low, "no such host"):
		return fiber.NewError(fiber.StatusServiceUnavailable,
			"Cannot reach the database server. Please ensure it is running and accessible.")
	}

	return fiber.NewError(fiber.StatusInternalServerError, "Database operation failed")
}
