package service

import (
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmailExists = errors.New("email already exists")

type UserService interface {
	CreateUser(req *CreateUserRequest, actorID string) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actorID string) (*model.User, error)
	DeleteUser(userID uuid.UUID, hard bool, actorID string) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	FullName string     `json:"full_name" validate:"required"`
	EntityID *uuid.UUID `json:"entity_id"`
}

type UpdateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password *string    `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	FullName string     `json:"full_name" validate:"required"`
	EntityID *uuid.UUID `json:"entity_id"`
	IsActive *bool      `json:"is_active"`
}

type userService struct {
	userRepo   repository.UserRepository
	entityRepo repository.EntityRepository
	usageRecorder
}

func NewUserService(userRepo repository.UserRepository, entityRepo repository.EntityRepository, usageLog repository.UsageLogRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo:      userRepo,
		entityRepo:    entityRepo,
		usageRecorder: usageRecorder{usageLog: usageLog, log: log},
	}
}

func (s *userService) CreateUser(req *CreateUserRequest, actorID string) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Check if email already exists
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	// 3. Validate linked entity when given
	if req.EntityID != nil {
		if _, err := s.entityRepo.FindByID(*req.EntityID); err != nil {
			return nil, ErrEntityNotFound
		}
	}

	user := &model.User{
		Email:    req.Email,
		FullName: req.FullName,
		EntityID: req.EntityID,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefUser, user.ID, fmt.Sprintf("created user '%s'", user.Email))
	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actorID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != user.Email {
		if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
			return nil, ErrEmailExists
		}
	}

	if req.EntityID != nil {
		if _, err := s.entityRepo.FindByID(*req.EntityID); err != nil {
			return nil, ErrEntityNotFound
		}
	}

	user.Email = req.Email
	user.FullName = req.FullName
	user.EntityID = req.EntityID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefUser, user.ID, fmt.Sprintf("updated user '%s'", user.Email))
	return user, nil
}

func (s *userService) DeleteUser(userID uuid.UUID, hard bool, actorID string) error {
	if err := s.userRepo.Delete(userID, hard); err != nil {
		return err
	}
	s.recordUsage(actorID, model.RefUser, userID, "deleted user")
	return nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
