package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditFields stamps creation and update times on every record.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseModel handles ID (UUID), audit trails and soft deletion.
//
// DeletedAt is a plain nullable timestamp, not gorm.DeletedAt: repositories
// expose Active/WithDeleted scopes so excluding soft-deleted rows is visible
// at every call site instead of happening through an implicit default query.
type BaseModel struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuditFields
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate assigns the UUID identity. Once set it is never rewritten.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

// IsDeleted reports whether the record has been soft-deleted.
func (base *BaseModel) IsDeleted() bool {
	return base.DeletedAt != nil
}
