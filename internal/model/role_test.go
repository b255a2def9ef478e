package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardReservedCreate(t *testing.T) {
	for code := range ReservedRoles {
		err := GuardReserved(RoleCreate, "", &Role{Code: code})
		assert.ErrorIs(t, err, ErrReservedRoleCode, code)
	}

	assert.NoError(t, GuardReserved(RoleCreate, "", &Role{Code: "ROLE_AUDITOR"}))
}

func TestGuardReservedUpdate(t *testing.T) {
	// Moving a reserved code to a different one is blocked.
	err := GuardReserved(RoleUpdate, RoleSeller, &Role{Code: "ROLE_SALES"})
	assert.ErrorIs(t, err, ErrReservedRoleChange)

	// Keeping the code while changing other fields is fine.
	assert.NoError(t, GuardReserved(RoleUpdate, RoleSeller, &Role{Code: RoleSeller, Name: "Renamed"}))

	// Non-reserved roles may change their code freely.
	assert.NoError(t, GuardReserved(RoleUpdate, "ROLE_AUDITOR", &Role{Code: "ROLE_INSPECTOR"}))
}

func TestGuardReservedDelete(t *testing.T) {
	err := GuardReserved(RoleDelete, "", &Role{Code: RoleWarehouseManager})
	assert.ErrorIs(t, err, ErrReservedRoleDelete)

	assert.NoError(t, GuardReserved(RoleDelete, "", &Role{Code: "ROLE_AUDITOR"}))
}

func TestIsReservedCode(t *testing.T) {
	assert.True(t, IsReservedCode(RoleWarehouseManager))
	assert.True(t, IsReservedCode(RoleSeller))
	assert.True(t, IsReservedCode(RoleCustomer))
	assert.False(t, IsReservedCode("ROLE_ADMIN"))
	assert.False(t, IsReservedCode(""))
}
