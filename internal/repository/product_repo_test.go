package repository

import (
	"testing"

	"go-stockroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// An explicit false must survive the insert; the column default only
// applies when the field is unset.
func TestCreateProductKeepsIndivisibleFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	category := &model.ProductCategory{Name: "Hardware"}
	require.NoError(t, repo.CreateCategory(category))

	product := &model.Product{Name: "Screw", SKU: "SCREW-001", CategoryID: category.ID, IsDivisible: boolPtr(false)}
	require.NoError(t, repo.Create(product))

	reloaded, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.IsDivisible)
	assert.False(t, *reloaded.IsDivisible)

	// Unset falls back to the column default.
	bolt := &model.Product{Name: "Bolt", SKU: "BOLT-001", CategoryID: category.ID}
	require.NoError(t, repo.Create(bolt))

	reloaded, err = repo.FindByID(bolt.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Divisible())
}

func TestCreateCategoryKeepsInactiveStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	category := &model.ProductCategory{Name: "Archive", Status: boolPtr(false)}
	require.NoError(t, repo.CreateCategory(category))

	reloaded, err := repo.FindCategoryByID(category.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Status)
	assert.False(t, *reloaded.Status)
}
