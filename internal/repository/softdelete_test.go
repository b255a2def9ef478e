package repository

import (
	"testing"
	"time"

	"go-stockroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDeletedIdempotent(t *testing.T) {
	db := setupTestDB(t)

	warehouse := &model.Warehouse{Name: "Main", Location: "Dock 1"}
	require.NoError(t, db.Create(warehouse).Error)

	require.NoError(t, markDeleted(db, &model.Warehouse{}, warehouse.ID))

	var first model.Warehouse
	require.NoError(t, WithDeleted(db).First(&first, "id = ?", warehouse.ID).Error)
	require.NotNil(t, first.DeletedAt)
	stamp := *first.DeletedAt

	// Marking again keeps the first timestamp.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, markDeleted(db, &model.Warehouse{}, warehouse.ID))

	var second model.Warehouse
	require.NoError(t, WithDeleted(db).First(&second, "id = ?", warehouse.ID).Error)
	require.NotNil(t, second.DeletedAt)
	assert.Equal(t, stamp, *second.DeletedAt)
}

func TestActiveScopeHidesSoftDeleted(t *testing.T) {
	db := setupTestDB(t)

	kept := &model.Warehouse{Name: "Kept", Location: "A"}
	gone := &model.Warehouse{Name: "Gone", Location: "B"}
	require.NoError(t, db.Create(kept).Error)
	require.NoError(t, db.Create(gone).Error)
	require.NoError(t, markDeleted(db, &model.Warehouse{}, gone.ID))

	var active []model.Warehouse
	require.NoError(t, Active(db).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, "Kept", active[0].Name)

	var all []model.Warehouse
	require.NoError(t, WithDeleted(db).Find(&all).Error)
	assert.Len(t, all, 2)
}

func TestRestoreClearsMark(t *testing.T) {
	db := setupTestDB(t)

	warehouse := &model.Warehouse{Name: "Main", Location: "Dock 1"}
	require.NoError(t, db.Create(warehouse).Error)
	require.NoError(t, markDeleted(db, &model.Warehouse{}, warehouse.ID))

	require.NoError(t, restore(db, &model.Warehouse{}, warehouse.ID))

	var reloaded model.Warehouse
	require.NoError(t, Active(db).First(&reloaded, "id = ?", warehouse.ID).Error)
	assert.Nil(t, reloaded.DeletedAt)

	// Restoring a live row is a no-op.
	require.NoError(t, restore(db, &model.Warehouse{}, warehouse.ID))
}

func TestRemoveDispatch(t *testing.T) {
	db := setupTestDB(t)

	soft := &model.Warehouse{Name: "Soft", Location: "A"}
	hard := &model.Warehouse{Name: "Hard", Location: "B"}
	require.NoError(t, db.Create(soft).Error)
	require.NoError(t, db.Create(hard).Error)

	require.NoError(t, remove(db, &model.Warehouse{}, soft.ID, false))
	require.NoError(t, remove(db, &model.Warehouse{}, hard.ID, true))

	var count int64
	WithDeleted(db).Model(&model.Warehouse{}).Count(&count)
	assert.Equal(t, int64(1), count, "hard delete removes the row, soft delete keeps it")

	var remaining model.Warehouse
	require.NoError(t, WithDeleted(db).First(&remaining).Error)
	assert.Equal(t, soft.ID, remaining.ID)
	assert.True(t, remaining.IsDeleted())
}
