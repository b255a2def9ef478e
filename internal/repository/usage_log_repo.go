package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageLogRepository is append-only on purpose: there is no update or
// delete. Rows are facts about what happened.
type UsageLogRepository interface {
	Create(entry *model.EntityUsageLog) error
	FindAll(limit int) ([]model.EntityUsageLog, error)
	FindByUser(userID uuid.UUID, limit int) ([]model.EntityUsageLog, error)
	FindByTarget(kind model.RefKind, id uuid.UUID) ([]model.EntityUsageLog, error)
}

type usageLogRepo struct {
	db *gorm.DB
}

func NewUsageLogRepo(db *gorm.DB) UsageLogRepository {
	return &usageLogRepo{db}
}

func (r *usageLogRepo) Create(entry *model.EntityUsageLog) error {
	return r.db.Create(entry).Error
}

func (r *usageLogRepo) FindAll(limit int) ([]model.EntityUsageLog, error) {
	var logs []model.EntityUsageLog
	err := r.db.Preload("User").
		Order("logged_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *usageLogRepo) FindByUser(userID uuid.UUID, limit int) ([]model.EntityUsageLog, error) {
	var logs []model.EntityUsageLog
	err := r.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *usageLogRepo) FindByTarget(kind model.RefKind, id uuid.UUID) ([]model.EntityUsageLog, error) {
	var logs []model.EntityUsageLog
	err := r.db.
		Where("target_kind = ? AND target_id = ?", kind, id).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}
