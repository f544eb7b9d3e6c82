package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const bookingCodePrefix = "BOOK-"

// NextBookingCode menurunkan kode booking berikutnya dari kode terakhir:
// BOOK-007 → BOOK-008; kosong → BOOK-001. Zero-pad minimal 3 digit.
func NextBookingCode(lastCode string) string {
	next := 1
	if lastCode != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(lastCode, bookingCodePrefix)); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", bookingCodePrefix, next)
}

// CalcDurationHours menghitung durasi booking dalam jam, dibulatkan ke atas
// (90 menit → 2 jam).
func CalcDurationHours(entry, exit time.Time) int {
	return int(math.Ceil(exit.Sub(entry).Hours()))
}
