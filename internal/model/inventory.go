package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrIndivisibleQuantity = errors.New("this product does not support decimal quantities")
	ErrDuplicateInventory  = errors.New("an inventory with these attributes already exists in the warehouse")
)

// Inventory holds the quantity of one product variant in one warehouse.
// The (warehouse, product, attributes) triple is unique.
type Inventory struct {
	BaseModel
	WarehouseID  uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_key" json:"warehouse_id" validate:"uuid_required"`
	Warehouse    *Warehouse         `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE" json:"warehouse,omitempty"`
	ProductID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_key" json:"product_id" validate:"uuid_required"`
	Product      *Product           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	AttributesID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_key" json:"attributes_id" validate:"uuid_required"`
	Attributes   *ProductAttributes `gorm:"foreignKey:AttributesID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
	Quantity     decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"quantity"`
}

// CheckQuantity rejects a fractional quantity when the product is marked
// non-divisible. The product must be loaded.
func (i *Inventory) CheckQuantity() error {
	if i.Product != nil && !i.Product.Divisible() && !i.Quantity.IsInteger() {
		return ErrIndivisibleQuantity
	}
	return nil
}

// Stocktaking represents a stock counting event in a warehouse. It owns its
// items; they are removed together.
type Stocktaking struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseID uuid.UUID         `gorm:"type:uuid;not null;index" json:"warehouse_id" validate:"uuid_required"`
	Warehouse   *Warehouse        `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE" json:"warehouse,omitempty"`
	Date        time.Time         `gorm:"not null" json:"date" validate:"required"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	Items       []StocktakingItem `gorm:"foreignKey:StocktakingID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (s *Stocktaking) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StocktakingItem pairs the quantity on record against the quantity counted
// for one inventory row during a stocktaking event.
type StocktakingItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StocktakingID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stocktaking_item" json:"stocktaking_id"`
	InventoryID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stocktaking_item" json:"inventory_id" validate:"uuid_required"`
	Inventory        *Inventory      `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE" json:"inventory,omitempty"`
	RecordedQuantity decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"recorded_quantity"`
	CountedQuantity  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"counted_quantity"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (i *StocktakingItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Discrepancy is the difference between the counted and recorded quantity.
func (i *StocktakingItem) Discrepancy() decimal.Decimal {
	return i.CountedQuantity.Sub(i.RecordedQuantity)
}

// ChangeType classifies an inventory change.
type ChangeType string

const (
	TransferIn  ChangeType = "transfer_in"
	TransferOut ChangeType = "transfer_out"
)

// InventoryHistory is the append-only ledger of inventory changes. For a
// transfer, two rows are written: transfer_out on the source referencing the
// destination, transfer_in on the destination referencing the source. Source
// carries a tagged reference to the record that caused the change.
type InventoryHistory struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InventoryID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"inventory_id"`
	Inventory          *Inventory      `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE" json:"inventory,omitempty"`
	ChangeDate         time.Time       `gorm:"autoCreateTime" json:"change_date"`
	ChangeType         ChangeType      `gorm:"type:varchar(50);not null" json:"change_type"`
	ChangeQuantity     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"change_quantity"`
	RelatedInventoryID *uuid.UUID      `gorm:"type:uuid" json:"related_inventory_id,omitempty"`
	RelatedInventory   *Inventory      `gorm:"foreignKey:RelatedInventoryID;constraint:OnDelete:SET NULL" json:"related_inventory,omitempty"`
	Source             Ref             `gorm:"embedded;embeddedPrefix:source_" json:"source,omitempty"`
	Notes              string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (h *InventoryHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return h.Source.Validate()
}
