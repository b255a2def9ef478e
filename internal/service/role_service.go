package service

import (
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleService interface {
	CreateRole(req *CreateRoleRequest, actorID string) (*model.Role, error)
	UpdateRole(id uuid.UUID, req *UpdateRoleRequest, actorID string) (*model.Role, error)
	DeleteRole(id uuid.UUID, hard bool, actorID string) error
	RestoreRole(id uuid.UUID) error
	GetAllRoles(includeDeleted bool) ([]model.Role, error)
	GetRoleByID(id uuid.UUID) (*model.Role, error)
	EnsureReservedRoles() error
}

type CreateRoleRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateRoleRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type roleService struct {
	roleRepo repository.RoleRepository
	usageRecorder
	log *zap.Logger
}

func NewRoleService(roleRepo repository.RoleRepository, usageLog repository.UsageLogRepository, log *zap.Logger) RoleService {
	return &roleService{
		roleRepo:      roleRepo,
		usageRecorder: usageRecorder{usageLog: usageLog, log: log},
		log:           log,
	}
}

// CreateRole rejects reserved codes. Reserved roles only come from the
// seeding path, which inserts through the repository directly.
func (s *roleService) CreateRole(req *CreateRoleRequest, actorID string) (*model.Role, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	role := &model.Role{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := model.GuardReserved(model.RoleCreate, "", role); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefRole, role.ID, fmt.Sprintf("created role '%s'", role.Code))
	return role, nil
}

// UpdateRole re-reads the persisted row and refuses to move a reserved code.
// Name and description of a reserved role may still change.
func (s *roleService) UpdateRole(id uuid.UUID, req *UpdateRoleRequest, actorID string) (*model.Role, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("role not found")
		}
		return nil, err
	}

	role.Code = req.Code
	role.Name = req.Name
	role.Description = req.Description

	if err := s.roleRepo.Update(role); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefRole, role.ID, fmt.Sprintf("updated role '%s'", role.Code))
	return role, nil
}

func (s *roleService) DeleteRole(id uuid.UUID, hard bool, actorID string) error {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return err
	}

	// The reserved guard runs inside the repository delete and again in the
	// model's BeforeDelete hook on the hard path.
	if err := s.roleRepo.Delete(id, hard); err != nil {
		return err
	}

	s.recordUsage(actorID, model.RefRole, id, fmt.Sprintf("deleted role '%s'", role.Code))
	return nil
}

func (s *roleService) RestoreRole(id uuid.UUID) error {
	return s.roleRepo.Restore(id)
}

func (s *roleService) GetAllRoles(includeDeleted bool) ([]model.Role, error) {
	if includeDeleted {
		return s.roleRepo.FindAllWithDeleted()
	}
	return s.roleRepo.FindAll()
}

func (s *roleService) GetRoleByID(id uuid.UUID) (*model.Role, error) {
	return s.roleRepo.FindByID(id)
}

// EnsureReservedRoles runs the seed routine. Called after migration when the
// deployment opts in via MANAGE_RESERVED_ROLES.
func (s *roleService) EnsureReservedRoles() error {
	return s.roleRepo.SeedReserved(s.log)
}
