package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Active narrows a query to rows that have not been soft-deleted. Callers
// pick Active or WithDeleted explicitly at every query site; there is no
// implicit default scope.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// WithDeleted returns the query unnarrowed, soft-deleted rows included.
func WithDeleted(db *gorm.DB) *gorm.DB {
	return db
}

// markDeleted stamps deleted_at with the current time. Idempotent: a row
// that is already marked keeps its original timestamp.
func markDeleted(db *gorm.DB, m interface{}, id uuid.UUID) error {
	return db.Model(m).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now().UTC()).Error
}

// restore clears deleted_at. Idempotent on rows that are not marked.
func restore(db *gorm.DB, m interface{}, id uuid.UUID) error {
	return db.Model(m).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil).Error
}

// hardDelete physically removes the row inside its own transaction, so the
// removal either fully applies or leaves the row untouched.
func hardDelete(db *gorm.DB, m interface{}, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(m).Error
	})
}

// remove dispatches on the hard flag: physical removal when set, soft mark
// otherwise.
func remove(db *gorm.DB, m interface{}, id uuid.UUID, hard bool) error {
	if hard {
		return hardDelete(db, m, id)
	}
	return markDeleted(db, m, id)
}
