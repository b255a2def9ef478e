package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationshipType names the kind of relationship between two entities
// (e.g. Supplier, Partner).
type RelationshipType struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

// EntityRelationship is the explicit join record between two entities,
// carrying the typed relationship and its creation timestamp.
type EntityRelationship struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	FromEntityID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_entity_relationship" json:"from_entity_id" validate:"uuid_required"`
	FromEntity         *Entity           `gorm:"foreignKey:FromEntityID;constraint:OnDelete:CASCADE" json:"from_entity,omitempty"`
	ToEntityID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_entity_relationship" json:"to_entity_id" validate:"uuid_required"`
	ToEntity           *Entity           `gorm:"foreignKey:ToEntityID;constraint:OnDelete:CASCADE" json:"to_entity,omitempty"`
	RelationshipTypeID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_entity_relationship" json:"relationship_type_id" validate:"uuid_required"`
	RelationshipType   *RelationshipType `gorm:"foreignKey:RelationshipTypeID;constraint:OnDelete:CASCADE" json:"relationship_type,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

func (r *EntityRelationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RoleAssignment assigns a role to an entity.
type RoleAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index" json:"entity_id" validate:"uuid_required"`
	Entity     *Entity   `gorm:"foreignKey:EntityID;constraint:OnDelete:CASCADE" json:"entity,omitempty"`
	RoleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"role_id" validate:"uuid_required"`
	Role       *Role     `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}

func (a *RoleAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
