package repository

import (
	"testing"

	"go-stockroom/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Role{},
		&model.EntityType{},
		&model.ContactNumber{},
		&model.ContactInfo{},
		&model.Tag{},
		&model.Entity{},
		&model.RelationshipType{},
		&model.EntityRelationship{},
		&model.RoleAssignment{},
		&model.User{},
		&model.Warehouse{},
		&model.WarehousePartner{},
		&model.ProductCategory{},
		&model.Product{},
		&model.SharedAttributes{},
		&model.ProductAttributes{},
		&model.Inventory{},
		&model.InventoryHistory{},
		&model.Stocktaking{},
		&model.StocktakingItem{},
		&model.EntityUsageLog{},
	))

	return db
}
