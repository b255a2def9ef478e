package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Warehouse represents a physical storage location. Warehouses can nest:
// a sub-warehouse is removed together with its parent.
type Warehouse struct {
	BaseModel
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Parent    *Warehouse `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	Name      string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Location  string     `gorm:"type:text" json:"location,omitempty"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	Manager   *Entity    `gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL" json:"manager,omitempty"`
}

// WarehousePartner records an entity holding a share in a warehouse.
type WarehousePartner struct {
	BaseModel
	WarehouseID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_partner" json:"warehouse_id" validate:"uuid_required"`
	Warehouse       *Warehouse      `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE" json:"warehouse,omitempty"`
	EntityID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_partner" json:"entity_id" validate:"uuid_required"`
	Entity          *Entity         `gorm:"foreignKey:EntityID;constraint:OnDelete:CASCADE" json:"entity,omitempty"`
	SharePercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"share_percentage"`
}
