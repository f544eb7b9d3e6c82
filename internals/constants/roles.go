package constants

import "fmt"

// Role pengguna (closed enumeration)
const (
	RoleAdmin         = "Admin"
	RoleStudent       = "Student"
	RoleCivilStaff    = "CivilStaff"
	RoleAcademicStaff = "AcademicStaff"
	RoleMilitaryStaff = "MilitaryStaff"
	RoleUser          = "User"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStudent,
		RoleCivilStaff,
		RoleAcademicStaff,
		RoleMilitaryStaff,
		RoleUser,
	}

	// Role yang membawa daftar kendaraan (semua kecuali Admin).
	VehicleRoles = []string{
		RoleStudent,
		RoleCivilStaff,
		RoleAcademicStaff,
		RoleMilitaryStaff,
		RoleUser,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsValidRole cek apakah value termasuk enumerasi role.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsVehicleRole cek apakah role membawa daftar kendaraan.
func IsVehicleRole(role string) bool {
	for _, r := range VehicleRoles {
		if r == role {
			return true
		}
	}
	return false
}
