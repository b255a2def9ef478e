package repository

import (
	"errors"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindAllWithDeleted() ([]model.Role, error)
	FindByID(id uuid.UUID) (*model.Role, error)
	FindByCode(code string) (*model.Role, error)
	Create(role *model.Role) error
	Update(role *model.Role) error
	Delete(id uuid.UUID, hard bool) error
	Restore(id uuid.UUID) error
	SeedReserved(log *zap.Logger) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := Active(r.db).Order("code ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindAllWithDeleted() ([]model.Role, error) {
	var roles []model.Role
	err := WithDeleted(r.db).Order("code ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := Active(r.db).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	var role model.Role
	if err := Active(r.db).Where("code = ?", code).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}

// Update compares the persisted code to the incoming code before saving:
// a reserved code may not be moved. A persisted row that cannot be found is
// a silent pass — the save proceeds without the guard. Intentional,
// long-standing behavior.
func (r *roleRepo) Update(role *model.Role) error {
	var persisted model.Role
	err := WithDeleted(r.db).First(&persisted, "id = ?", role.ID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return err
	default:
		if err := model.GuardReserved(model.RoleUpdate, persisted.Code, role); err != nil {
			return err
		}
	}
	return r.db.Save(role).Error
}

// Delete loads the row first so the reserved guard in the model's
// BeforeDelete hook sees the role's code on the hard path.
func (r *roleRepo) Delete(id uuid.UUID, hard bool) error {
	var role model.Role
	if err := WithDeleted(r.db).First(&role, "id = ?", id).Error; err != nil {
		return err
	}
	if err := model.GuardReserved(model.RoleDelete, "", &role); err != nil {
		return err
	}
	if hard {
		return r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Delete(&role).Error
		})
	}
	return markDeleted(r.db, &model.Role{}, id)
}

func (r *roleRepo) Restore(id uuid.UUID) error {
	return restore(r.db, &model.Role{}, id)
}

// SeedReserved get-or-creates a Role for every reserved (code, name) pair.
// It inserts directly, bypassing the create-time reserved check: the checks
// block user-level operations, seeding is the one producer of these rows.
// Safe to run repeatedly.
func (r *roleRepo) SeedReserved(log *zap.Logger) error {
	for code, name := range model.ReservedRoles {
		var existing model.Role
		err := WithDeleted(r.db).Where("code = ?", code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role := model.Role{Code: code, Name: name}
			if err := r.db.Create(&role).Error; err != nil {
				return err
			}
			log.Info("created reserved role", zap.String("code", code))
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
