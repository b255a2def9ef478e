package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindAllWithDeleted() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Create(product *model.Product) error
	Update(product *model.Product) error
	Delete(id uuid.UUID, hard bool) error
	Restore(id uuid.UUID) error

	// Categories
	FindAllCategories() ([]model.ProductCategory, error)
	FindCategoryByID(id uuid.UUID) (*model.ProductCategory, error)
	CreateCategory(category *model.ProductCategory) error
	UpdateCategory(category *model.ProductCategory) error
	DeleteCategory(id uuid.UUID, hard bool) error

	// Attributes
	FindAttributesByID(id uuid.UUID) (*model.ProductAttributes, error)
	CreateSharedAttributes(shared *model.SharedAttributes) error
	CreateAttributes(attrs *model.ProductAttributes) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := Active(r.db).Preload("Category").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindAllWithDeleted() ([]model.Product, error) {
	var products []model.Product
	err := WithDeleted(r.db).Preload("Category").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := Active(r.db).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := Active(r.db).First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID, hard bool) error {
	return remove(r.db, &model.Product{}, id, hard)
}

func (r *productRepo) Restore(id uuid.UUID) error {
	return restore(r.db, &model.Product{}, id)
}

func (r *productRepo) FindAllCategories() ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	err := Active(r.db).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *productRepo) FindCategoryByID(id uuid.UUID) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := Active(r.db).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *productRepo) CreateCategory(category *model.ProductCategory) error {
	return r.db.Create(category).Error
}

func (r *productRepo) UpdateCategory(category *model.ProductCategory) error {
	return r.db.Save(category).Error
}

func (r *productRepo) DeleteCategory(id uuid.UUID, hard bool) error {
	return remove(r.db, &model.ProductCategory{}, id, hard)
}

func (r *productRepo) FindAttributesByID(id uuid.UUID) (*model.ProductAttributes, error) {
	var attrs model.ProductAttributes
	err := Active(r.db).Preload("SharedAttributes").First(&attrs, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attrs, nil
}

func (r *productRepo) CreateSharedAttributes(shared *model.SharedAttributes) error {
	return r.db.Create(shared).Error
}

func (r *productRepo) CreateAttributes(attrs *model.ProductAttributes) error {
	return r.db.Create(attrs).Error
}
