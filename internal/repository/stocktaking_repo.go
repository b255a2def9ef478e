package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StocktakingRepository interface {
	Create(stocktaking *model.Stocktaking) error
	FindAll() ([]model.Stocktaking, error)
	FindByID(id uuid.UUID) (*model.Stocktaking, error)
	FindByWarehouse(warehouseID uuid.UUID) ([]model.Stocktaking, error)
}

type stocktakingRepo struct {
	db *gorm.DB
}

func NewStocktakingRepo(db *gorm.DB) StocktakingRepository {
	return &stocktakingRepo{db}
}

// Create stores the stocktaking event together with its items.
func (r *stocktakingRepo) Create(stocktaking *model.Stocktaking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		items := stocktaking.Items
		stocktaking.Items = nil
		if err := tx.Create(stocktaking).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].StocktakingID = stocktaking.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		stocktaking.Items = items
		return nil
	})
}

func (r *stocktakingRepo) FindAll() ([]model.Stocktaking, error) {
	var stocktakings []model.Stocktaking
	err := r.db.Preload("Warehouse").Preload("Items").
		Order("date DESC").
		Find(&stocktakings).Error
	return stocktakings, err
}

func (r *stocktakingRepo) FindByID(id uuid.UUID) (*model.Stocktaking, error) {
	var stocktaking model.Stocktaking
	err := r.db.Preload("Warehouse").
		Preload("Items").Preload("Items.Inventory").Preload("Items.Inventory.Product").
		First(&stocktaking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stocktaking, nil
}

func (r *stocktakingRepo) FindByWarehouse(warehouseID uuid.UUID) ([]model.Stocktaking, error) {
	var stocktakings []model.Stocktaking
	err := r.db.Preload("Items").
		Where("warehouse_id = ?", warehouseID).
		Order("date DESC").
		Find(&stocktakings).Error
	return stocktakings, err
}
