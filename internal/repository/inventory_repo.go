package repository

import (
	"time"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindAll() ([]model.Inventory, error)
	FindAllWithDeleted() ([]model.Inventory, error)
	FindByID(id uuid.UUID) (*model.Inventory, error)
	FindByWarehouse(warehouseID uuid.UUID) ([]model.Inventory, error)
	DuplicateExists(warehouseID, productID, attributesID uuid.UUID, excludeID uuid.UUID) (bool, error)
	Create(inventory *model.Inventory) error
	Update(inventory *model.Inventory) error
	Delete(id uuid.UUID, hard bool) error
	Restore(id uuid.UUID) error

	// History is append-only: create and read, never update.
	AppendHistory(tx *gorm.DB, entry *model.InventoryHistory) error
	FindHistory(inventoryID uuid.UUID) ([]model.InventoryHistory, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

// DashboardStats for the overview screen.
type DashboardStats struct {
	TotalWarehouses  int64 `json:"total_warehouses"`
	TotalProducts    int64 `json:"total_products"`
	TotalInventories int64 `json:"total_inventories"`
	EmptyStockCount  int64 `json:"empty_stock_count"`
}

// StockMovementData aggregates transfers per day for chart data.
type StockMovementData struct {
	Date     string  `json:"date"`
	Inbound  float64 `json:"inbound"`
	Outbound float64 `json:"outbound"`
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll() ([]model.Inventory, error) {
	var inventories []model.Inventory
	err := Active(r.db).
		Preload("Warehouse").Preload("Product").Preload("Attributes").
		Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepo) FindAllWithDeleted() ([]model.Inventory, error) {
	var inventories []model.Inventory
	err := WithDeleted(r.db).
		Preload("Warehouse").Preload("Product").
		Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepo) FindByID(id uuid.UUID) (*model.Inventory, error) {
	var inventory model.Inventory
	err := Active(r.db).
		Preload("Warehouse").Preload("Product").Preload("Attributes").
		First(&inventory, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepo) FindByWarehouse(warehouseID uuid.UUID) ([]model.Inventory, error) {
	var inventories []model.Inventory
	err := Active(r.db).
		Preload("Product").Preload("Attributes").
		Where("warehouse_id = ?", warehouseID).
		Find(&inventories).Error
	return inventories, err
}

// DuplicateExists checks the (warehouse, product, attributes) triple,
// excluding the record's own id so in-place updates pass.
func (r *inventoryRepo) DuplicateExists(warehouseID, productID, attributesID uuid.UUID, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := Active(r.db).Model(&model.Inventory{}).
		Where("warehouse_id = ? AND product_id = ? AND attributes_id = ?", warehouseID, productID, attributesID)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *inventoryRepo) Create(inventory *model.Inventory) error {
	return r.db.Create(inventory).Error
}

func (r *inventoryRepo) Update(inventory *model.Inventory) error {
	return r.db.Save(inventory).Error
}

func (r *inventoryRepo) Delete(id uuid.UUID, hard bool) error {
	return remove(r.db, &model.Inventory{}, id, hard)
}

func (r *inventoryRepo) Restore(id uuid.UUID) error {
	return restore(r.db, &model.Inventory{}, id)
}

// AppendHistory takes the caller's *gorm.DB so the ledger entry joins the
// surrounding stock-movement transaction.
func (r *inventoryRepo) AppendHistory(tx *gorm.DB, entry *model.InventoryHistory) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(entry).Error
}

func (r *inventoryRepo) FindHistory(inventoryID uuid.UUID) ([]model.InventoryHistory, error) {
	var history []model.InventoryHistory
	err := r.db.
		Preload("RelatedInventory").
		Where("inventory_id = ?", inventoryID).
		Order("change_date DESC").
		Find(&history).Error
	return history, err
}

func (r *inventoryRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	Active(r.db).Model(&model.Warehouse{}).Count(&stats.TotalWarehouses)
	Active(r.db).Model(&model.Product{}).Count(&stats.TotalProducts)
	Active(r.db).Model(&model.Inventory{}).Count(&stats.TotalInventories)
	Active(r.db).Model(&model.Inventory{}).Where("quantity <= 0").Count(&stats.EmptyStockCount)

	return &stats, nil
}

func (r *inventoryRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.InventoryHistory{}).
		Select(`
			DATE(change_date) as date,
			COALESCE(SUM(CASE WHEN change_type = 'transfer_in' THEN change_quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN change_type = 'transfer_out' THEN change_quantity ELSE 0 END), 0) as outbound
		`).
		Where("change_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(change_date)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
