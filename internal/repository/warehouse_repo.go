package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	FindAll() ([]model.Warehouse, error)
	FindAllWithDeleted() ([]model.Warehouse, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
	Create(warehouse *model.Warehouse) error
	Update(warehouse *model.Warehouse) error
	Delete(id uuid.UUID, hard bool) error
	Restore(id uuid.UUID) error

	FindPartners(warehouseID uuid.UUID) ([]model.WarehousePartner, error)
	CreatePartner(partner *model.WarehousePartner) error
	DeletePartner(id uuid.UUID) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) FindAll() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := Active(r.db).Preload("Manager").Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindAllWithDeleted() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := WithDeleted(r.db).Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := Active(r.db).Preload("Manager").Preload("Parent").First(&warehouse, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepo) Delete(id uuid.UUID, hard bool) error {
	return remove(r.db, &model.Warehouse{}, id, hard)
}

func (r *warehouseRepo) Restore(id uuid.UUID) error {
	return restore(r.db, &model.Warehouse{}, id)
}

func (r *warehouseRepo) FindPartners(warehouseID uuid.UUID) ([]model.WarehousePartner, error) {
	var partners []model.WarehousePartner
	err := Active(r.db).Preload("Entity").
		Where("warehouse_id = ?", warehouseID).
		Find(&partners).Error
	return partners, err
}

func (r *warehouseRepo) CreatePartner(partner *model.WarehousePartner) error {
	return r.db.Create(partner).Error
}

func (r *warehouseRepo) DeletePartner(id uuid.UUID) error {
	return remove(r.db, &model.WarehousePartner{}, id, false)
}
