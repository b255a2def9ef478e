package repository

import (
	"testing"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedReservedIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)

	require.NoError(t, repo.SeedReserved(zap.NewNop()))
	require.NoError(t, repo.SeedReserved(zap.NewNop()))

	roles, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, roles, len(model.ReservedRoles))

	for _, role := range roles {
		assert.Equal(t, model.ReservedRoles[role.Code], role.Name)
	}
}

func TestUpdateBlocksReservedCodeChange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)
	require.NoError(t, repo.SeedReserved(zap.NewNop()))

	seller, err := repo.FindByCode(model.RoleSeller)
	require.NoError(t, err)

	seller.Code = "ROLE_SALES"
	err = repo.Update(seller)
	assert.ErrorIs(t, err, model.ErrReservedRoleChange)
}

func TestUpdateAllowsReservedRename(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)
	require.NoError(t, repo.SeedReserved(zap.NewNop()))

	seller, err := repo.FindByCode(model.RoleSeller)
	require.NoError(t, err)

	seller.Name = "Sales Agent"
	seller.Description = "Handles outgoing stock"
	require.NoError(t, repo.Update(seller))

	reloaded, err := repo.FindByCode(model.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, "Sales Agent", reloaded.Name)
}

func TestUpdateUnknownRowSavesWithoutGuard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)

	// No persisted row to compare against: the save proceeds unguarded.
	role := &model.Role{Code: "ROLE_AUDITOR", Name: "Auditor"}
	role.ID = uuid.New()
	require.NoError(t, repo.Update(role))

	reloaded, err := repo.FindByCode("ROLE_AUDITOR")
	require.NoError(t, err)
	assert.Equal(t, role.ID, reloaded.ID)
}

func TestDeleteBlocksReservedRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)
	require.NoError(t, repo.SeedReserved(zap.NewNop()))

	customer, err := repo.FindByCode(model.RoleCustomer)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(customer.ID, false), model.ErrReservedRoleDelete)
	assert.ErrorIs(t, repo.Delete(customer.ID, true), model.ErrReservedRoleDelete)

	// Still present.
	_, err = repo.FindByCode(model.RoleCustomer)
	assert.NoError(t, err)
}

func TestBeforeDeleteHookBlocksDirectDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)
	require.NoError(t, repo.SeedReserved(zap.NewNop()))

	seller, err := repo.FindByCode(model.RoleSeller)
	require.NoError(t, err)

	// Bypassing the repository entirely still trips the model hook.
	err = db.Delete(seller).Error
	assert.ErrorIs(t, err, model.ErrReservedRoleDelete)
}

func TestRoleSoftDeleteAndRestore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepo(db)

	role := &model.Role{Code: "ROLE_AUDITOR", Name: "Auditor"}
	require.NoError(t, repo.Create(role))

	require.NoError(t, repo.Delete(role.ID, false))

	_, err := repo.FindByID(role.ID)
	assert.Error(t, err, "soft-deleted role is hidden from active queries")

	all, err := repo.FindAllWithDeleted()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted())

	require.NoError(t, repo.Restore(role.ID))
	_, err = repo.FindByID(role.ID)
	assert.NoError(t, err)
}
