package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntityType stores the kind of entity (e.g. Person, Company).
type EntityType struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required"`
}

// ContactNumber stores a phone number associated with a contact.
type ContactNumber struct {
	BaseModel
	Phone string `gorm:"type:varchar(15);not null" json:"phone" validate:"required"`
}

// ContactInfo stores the contact information of an Entity. Each Entity owns
// exactly one ContactInfo; they are created and removed together.
type ContactInfo struct {
	BaseModel
	Email        *string         `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty" validate:"omitempty,email"`
	Picture      string          `gorm:"type:varchar(255)" json:"picture,omitempty"`
	Address      string          `gorm:"type:text" json:"address,omitempty"`
	PhoneNumbers []ContactNumber `gorm:"many2many:contact_info_phone_numbers;" json:"phone_numbers,omitempty"`
}

// Tag categorizes entities for better classification.
type Tag struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required"`
}

// Entity is a person or organization participating in the system, distinct
// from a User account.
type Entity struct {
	BaseModel
	Name         string         `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	EntityTypeID uuid.UUID      `gorm:"type:uuid;not null" json:"entity_type_id" validate:"uuid_required"`
	EntityType   *EntityType    `gorm:"foreignKey:EntityTypeID;constraint:OnDelete:CASCADE" json:"entity_type,omitempty"`
	ContactID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"contact_id"`
	ContactInfo  *ContactInfo   `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"contact_info,omitempty"`
	Additional   datatypes.JSON `gorm:"type:jsonb" json:"additional_info,omitempty"`
	DateJoined   *time.Time     `gorm:"type:date" json:"date_joined,omitempty"`

	Roles []Role `gorm:"many2many:role_assignments;joinForeignKey:EntityID;joinReferences:RoleID" json:"roles,omitempty"`
	Tags  []Tag  `gorm:"many2many:entity_tags;" json:"tags,omitempty"`
}
