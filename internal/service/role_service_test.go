package service

import (
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newRoleService(t *testing.T) (RoleService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	roleRepo := repository.NewRoleRepo(db)
	usageRepo := repository.NewUsageLogRepo(db)
	return NewRoleService(roleRepo, usageRepo, zap.NewNop()), db
}

func TestCreateRoleRejectsReservedCode(t *testing.T) {
	svc, _ := newRoleService(t)

	_, err := svc.CreateRole(&CreateRoleRequest{
		Code: model.RoleSeller,
		Name: "My Seller",
	}, "tester")
	assert.ErrorIs(t, err, model.ErrReservedRoleCode)
}

func TestCreateRoleRecordsUsage(t *testing.T) {
	svc, db := newRoleService(t)

	role, err := svc.CreateRole(&CreateRoleRequest{
		Code: "ROLE_AUDITOR",
		Name: "Auditor",
	}, "tester")
	require.NoError(t, err)

	var logs []model.EntityUsageLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, model.RefRole, logs[0].Target.Kind)
	assert.Equal(t, role.ID, logs[0].Target.ID)
}

func TestUpdateRoleKeepsReservedCode(t *testing.T) {
	svc, _ := newRoleService(t)
	require.NoError(t, svc.EnsureReservedRoles())

	roles, err := svc.GetAllRoles(false)
	require.NoError(t, err)

	var seller model.Role
	for _, r := range roles {
		if r.Code == model.RoleSeller {
			seller = r
		}
	}
	require.NotZero(t, seller.ID)

	// Renaming the display name of a reserved role is allowed.
	updated, err := svc.UpdateRole(seller.ID, &UpdateRoleRequest{
		Code: model.RoleSeller,
		Name: "Sales Agent",
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "Sales Agent", updated.Name)

	// Moving its code is not.
	_, err = svc.UpdateRole(seller.ID, &UpdateRoleRequest{
		Code: "ROLE_SALES",
		Name: "Sales Agent",
	}, "tester")
	assert.ErrorIs(t, err, model.ErrReservedRoleChange)
}

func TestDeleteRoleRejectsReserved(t *testing.T) {
	svc, _ := newRoleService(t)
	require.NoError(t, svc.EnsureReservedRoles())

	roles, err := svc.GetAllRoles(false)
	require.NoError(t, err)
	require.NotEmpty(t, roles)

	err = svc.DeleteRole(roles[0].ID, false, "tester")
	assert.ErrorIs(t, err, model.ErrReservedRoleDelete)
}

func TestEnsureReservedRolesIdempotent(t *testing.T) {
	svc, _ := newRoleService(t)

	require.NoError(t, svc.EnsureReservedRoles())
	require.NoError(t, svc.EnsureReservedRoles())

	roles, err := svc.GetAllRoles(false)
	require.NoError(t, err)
	assert.Len(t, roles, len(model.ReservedRoles))
}
