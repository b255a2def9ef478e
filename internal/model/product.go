package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductCategory groups products. Categories can nest; subcategories are
// removed together with their parent.
type ProductCategory struct {
	BaseModel
	ParentID     *uuid.UUID       `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Parent       *ProductCategory `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	Name         string           `gorm:"type:varchar(200);uniqueIndex;not null" json:"name" validate:"required"`
	Image        string           `gorm:"type:varchar(255)" json:"image,omitempty"`
	Status       *bool            `gorm:"default:true" json:"status"`
	Descriptions string           `gorm:"type:text" json:"descriptions,omitempty"`
}

// Product represents a product kept in stock.
//
// IsDivisible controls whether inventory of this product may carry a
// fractional quantity. It is a pointer so that an explicit false survives
// the insert: with a plain bool the zero value is omitted and the column
// default wins.
type Product struct {
	BaseModel
	Name        string           `gorm:"type:varchar(200);not null" json:"name" validate:"required"`
	SKU         string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku" validate:"required"`
	Description string           `gorm:"type:text" json:"description,omitempty"`
	CategoryID  uuid.UUID        `gorm:"type:uuid;not null" json:"category_id" validate:"uuid_required"`
	Category    *ProductCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	IsDivisible *bool            `gorm:"default:true" json:"is_divisible"`
}

// Divisible reports whether inventory of the product may hold fractional
// quantities. Unset means divisible, matching the column default.
func (p *Product) Divisible() bool {
	return p.IsDivisible == nil || *p.IsDivisible
}

// SharedAttributes holds an attribute map shared across several product
// attribute sets (e.g. a common size/color scheme).
type SharedAttributes struct {
	BaseModel
	Attributes datatypes.JSONMap `gorm:"type:jsonb;not null" json:"attributes"`
}

// ProductAttributes stores the concrete attribute values of a product
// variant on top of its shared attribute scheme.
type ProductAttributes struct {
	BaseModel
	SharedAttributesID uuid.UUID         `gorm:"type:uuid;not null" json:"shared_attributes_id" validate:"uuid_required"`
	SharedAttributes   *SharedAttributes `gorm:"foreignKey:SharedAttributesID;constraint:OnDelete:CASCADE" json:"shared_attributes,omitempty"`
	Attributes         datatypes.JSONMap `gorm:"type:jsonb" json:"attributes,omitempty"`
}
