package repository

import (
	"testing"
	"time"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type inventoryFixture struct {
	warehouse  *model.Warehouse
	product    *model.Product
	attributes *model.ProductAttributes
}

func seedInventoryFixture(t *testing.T, db *gorm.DB) inventoryFixture {
	t.Helper()

	category := &model.ProductCategory{Name: "Hardware"}
	require.NoError(t, db.Create(category).Error)

	product := &model.Product{Name: "Bolt", SKU: "BOLT-001", CategoryID: category.ID}
	require.NoError(t, db.Create(product).Error)

	shared := &model.SharedAttributes{Attributes: map[string]interface{}{"size": "M8"}}
	require.NoError(t, db.Create(shared).Error)

	attrs := &model.ProductAttributes{SharedAttributesID: shared.ID}
	require.NoError(t, db.Create(attrs).Error)

	warehouse := &model.Warehouse{Name: "Main", Location: "Dock 1"}
	require.NoError(t, db.Create(warehouse).Error)

	return inventoryFixture{warehouse: warehouse, product: product, attributes: attrs}
}

func TestDuplicateExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepo(db)
	fix := seedInventoryFixture(t, db)

	inventory := &model.Inventory{
		WarehouseID:  fix.warehouse.ID,
		ProductID:    fix.product.ID,
		AttributesID: fix.attributes.ID,
		Quantity:     decimal.NewFromInt(10),
	}
	require.NoError(t, repo.Create(inventory))

	dup, err := repo.DuplicateExists(fix.warehouse.ID, fix.product.ID, fix.attributes.ID, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, dup)

	// The record's own id does not count as a duplicate of itself.
	dup, err = repo.DuplicateExists(fix.warehouse.ID, fix.product.ID, fix.attributes.ID, inventory.ID)
	require.NoError(t, err)
	assert.False(t, dup)

	// A different warehouse frees the triple.
	other := &model.Warehouse{Name: "Annex", Location: "Dock 2"}
	require.NoError(t, db.Create(other).Error)
	dup, err = repo.DuplicateExists(other.ID, fix.product.ID, fix.attributes.ID, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestAppendAndFindHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepo(db)
	fix := seedInventoryFixture(t, db)

	inventory := &model.Inventory{
		WarehouseID:  fix.warehouse.ID,
		ProductID:    fix.product.ID,
		AttributesID: fix.attributes.ID,
		Quantity:     decimal.NewFromInt(10),
	}
	require.NoError(t, repo.Create(inventory))

	entry := &model.InventoryHistory{
		InventoryID:    inventory.ID,
		ChangeType:     model.TransferOut,
		ChangeQuantity: decimal.NewFromInt(3),
		Source:         model.Ref{Kind: model.RefStocktaking, ID: uuid.New()},
		Notes:          "manual correction",
	}
	require.NoError(t, repo.AppendHistory(nil, entry))

	history, err := repo.FindHistory(inventory.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.TransferOut, history[0].ChangeType)
	assert.Equal(t, model.RefStocktaking, history[0].Source.Kind)
}

func TestAppendHistoryRejectsUnknownSource(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepo(db)
	fix := seedInventoryFixture(t, db)

	inventory := &model.Inventory{
		WarehouseID:  fix.warehouse.ID,
		ProductID:    fix.product.ID,
		AttributesID: fix.attributes.ID,
		Quantity:     decimal.NewFromInt(10),
	}
	require.NoError(t, repo.Create(inventory))

	entry := &model.InventoryHistory{
		InventoryID:    inventory.ID,
		ChangeType:     model.TransferIn,
		ChangeQuantity: decimal.NewFromInt(1),
		Source:         model.Ref{Kind: "shipment", ID: uuid.New()},
	}
	err := repo.AppendHistory(nil, entry)
	assert.ErrorIs(t, err, model.ErrUnknownRefKind)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepo(db)
	fix := seedInventoryFixture(t, db)

	full := &model.Inventory{
		WarehouseID:  fix.warehouse.ID,
		ProductID:    fix.product.ID,
		AttributesID: fix.attributes.ID,
		Quantity:     decimal.NewFromInt(10),
	}
	require.NoError(t, repo.Create(full))

	emptyAttrs := &model.ProductAttributes{SharedAttributesID: fix.attributes.SharedAttributesID}
	require.NoError(t, db.Create(emptyAttrs).Error)
	empty := &model.Inventory{
		WarehouseID:  fix.warehouse.ID,
		ProductID:    fix.product.ID,
		AttributesID: emptyAttrs.ID,
		Quantity:     decimal.Zero,
	}
	require.NoError(t, repo.Create(empty))

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalWarehouses)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalInventories)
	assert.Equal(t, int64(1), stats.EmptyStockCount)
}

func TestGetStockMovementAggregatesByDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepo(db)
	fix := seedInventoryFixture(t, db)

	inventory := &model.Inventory{
		WarehouseID:  fix.warehouse.ID,
		ProductID:    fix.product.ID,
		AttributesID: fix.attributes.ID,
		Quantity:     decimal.NewFromInt(10),
	}
	require.NoError(t, repo.Create(inventory))

	for _, e := range []model.InventoryHistory{
		{InventoryID: inventory.ID, ChangeType: model.TransferIn, ChangeQuantity: decimal.NewFromInt(4)},
		{InventoryID: inventory.ID, ChangeType: model.TransferIn, ChangeQuantity: decimal.NewFromInt(2)},
		{InventoryID: inventory.ID, ChangeType: model.TransferOut, ChangeQuantity: decimal.NewFromInt(5)},
	} {
		entry := e
		require.NoError(t, repo.AppendHistory(nil, &entry))
	}

	start := time.Now().Add(-24 * time.Hour)
	end := time.Now().Add(24 * time.Hour)
	movement, err := repo.GetStockMovement(start, end)
	require.NoError(t, err)
	require.Len(t, movement, 1)
	assert.Equal(t, 6.0, movement[0].Inbound)
	assert.Equal(t, 5.0, movement[0].Outbound)
}
