package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("SuperAdmin"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("admin")) // case-sensitive
}

func TestIsVehicleRole(t *testing.T) {
	// semua role kecuali Admin membawa kendaraan
	assert.False(t, IsVehicleRole(RoleAdmin))
	for _, role := range []string{RoleStudent, RoleCivilStaff, RoleAcademicStaff, RoleMilitaryStaff, RoleUser} {
		assert.True(t, IsVehicleRole(role), role)
	}
}
