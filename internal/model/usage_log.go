package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityUsageLog is a write-once record of an action performed on some
// record. There is no update path: rows are appended and read, never
// modified. The user link is nullable so the fact survives user removal.
type EntityUsageLog struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID   *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User     *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	Target   Ref        `gorm:"embedded;embeddedPrefix:target_" json:"target"`
	Action   string     `gorm:"type:text;not null" json:"action" validate:"required"`
	EntityID *uuid.UUID `gorm:"type:uuid;index" json:"entity_id,omitempty"`
	Entity   *Entity    `gorm:"foreignKey:EntityID;constraint:OnDelete:SET NULL" json:"entity,omitempty"`
	LoggedAt time.Time  `gorm:"autoCreateTime" json:"logged_at"`
}

func (l *EntityUsageLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return l.Target.Validate()
}
