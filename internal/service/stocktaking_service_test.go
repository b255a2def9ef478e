package service

import (
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stocktakingEnv struct {
	svc       StocktakingService
	db        *gorm.DB
	warehouse *model.Warehouse
	inventory *model.Inventory
}

func newStocktakingEnv(t *testing.T) *stocktakingEnv {
	t.Helper()
	db := setupTestDB(t)

	stocktakingRepo := repository.NewStocktakingRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	usageRepo := repository.NewUsageLogRepo(db)
	svc := NewStocktakingService(stocktakingRepo, inventoryRepo, warehouseRepo, usageRepo, zap.NewNop())

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

	inventory := &model.Inventory{
		WarehouseID:  warehouse.ID,
		ProductID:    product.ID,
		AttributesID: attrs.ID,
		Quantity:     decimal.NewFromInt(10),
	}
	require.NoError(t, db.Create(inventory).Error)

	return &stocktakingEnv{svc: svc, db: db, warehouse: warehouse, inventory: inventory}
}

func TestCreateStocktakingSnapshotsRecordedQuantity(t *testing.T) {
	env := newStocktakingEnv(t)

	stocktaking, err := env.svc.CreateStocktaking(&CreateStocktakingRequest{
		WarehouseID: env.warehouse.ID,
		Notes:       "quarterly count",
		Items: []StocktakingItemRequest{
			{InventoryID: env.inventory.ID, CountedQuantity: decimal.NewFromInt(7)},
		},
	}, "tester")
	require.NoError(t, err)
	require.Len(t, stocktaking.Items, 1)

	item := stocktaking.Items[0]
	assert.True(t, item.RecordedQuantity.Equal(decimal.NewFromInt(10)),
		"recorded quantity is the system's belief at counting time")
	assert.True(t, item.CountedQuantity.Equal(decimal.NewFromInt(7)))
	assert.True(t, item.Discrepancy().Equal(decimal.NewFromInt(-3)))
}

func TestCreateStocktakingRejectsDuplicateItems(t *testing.T) {
	env := newStocktakingEnv(t)

	_, err := env.svc.CreateStocktaking(&CreateStocktakingRequest{
		WarehouseID: env.warehouse.ID,
		Items: []StocktakingItemRequest{
			{InventoryID: env.inventory.ID, CountedQuantity: decimal.NewFromInt(7)},
			{InventoryID: env.inventory.ID, CountedQuantity: decimal.NewFromInt(8)},
		},
	}, "tester")
	assert.ErrorIs(t, err, ErrDuplicateStocktakingItem)
}

func TestCreateStocktakingRequiresWarehouse(t *testing.T) {
	env := newStocktakingEnv(t)

	other := &model.Warehouse{Name: "Ghost", Location: "Nowhere"}
	other.ID = env.inventory.ID // an id that is not a warehouse
	_, err := env.svc.CreateStocktaking(&CreateStocktakingRequest{
		WarehouseID: other.ID,
		Items: []StocktakingItemRequest{
			{InventoryID: env.inventory.ID, CountedQuantity: decimal.NewFromInt(7)},
		},
	}, "tester")
	assert.EqualError(t, err, "warehouse not found")
}

func TestCreateStocktakingRequiresItems(t *testing.T) {
	env := newStocktakingEnv(t)

	_, err := env.svc.CreateStocktaking(&CreateStocktakingRequest{
		WarehouseID: env.warehouse.ID,
	}, "tester")
	assert.Error(t, err)
}

func TestGetStocktakingByIDReportsDiscrepancies(t *testing.T) {
	env := newStocktakingEnv(t)

	created, err := env.svc.CreateStocktaking(&CreateStocktakingRequest{
		WarehouseID: env.warehouse.ID,
		Items: []StocktakingItemRequest{
			{InventoryID: env.inventory.ID, CountedQuantity: decimal.NewFromInt(13)},
		},
	}, "tester")
	require.NoError(t, err)

	resp, err := env.svc.GetStocktakingByID(created.ID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Discrepancy.Equal(decimal.NewFromInt(3)))
}
