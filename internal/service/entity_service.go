package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrEntityNotFound = errors.New("entity not found")

type EntityService interface {
	CreateEntity(req *CreateEntityRequest, actorID string) (*model.Entity, error)
	UpdateEntity(id uuid.UUID, req *UpdateEntityRequest, actorID string) (*model.Entity, error)
	DeleteEntity(id uuid.UUID, hard bool, actorID string) error
	RestoreEntity(id uuid.UUID) error
	GetAllEntities(includeDeleted bool) ([]model.Entity, error)
	GetEntityByID(id uuid.UUID) (*model.Entity, error)

	AssignRole(entityID uuid.UUID, roleID uuid.UUID, actorID string) (*model.RoleAssignment, error)
	UnassignRole(assignmentID uuid.UUID, actorID string) error

	AddRelationship(req *AddRelationshipRequest, actorID string) (*model.EntityRelationship, error)
	RemoveRelationship(relationshipID uuid.UUID, actorID string) error
	GetRelationships(entityID uuid.UUID) ([]model.EntityRelationship, error)
}

type CreateEntityRequest struct {
	Name         string         `json:"name" validate:"required"`
	EntityTypeID uuid.UUID      `json:"entity_type_id" validate:"uuid_required"`
	Email        *string        `json:"email" validate:"omitempty,email"`
	Address      string         `json:"address"`
	Phones       []string       `json:"phones"`
	Additional   datatypes.JSON `json:"additional_info"`
	DateJoined   *string        `json:"date_joined"` // Format: YYYY-MM-DD
}

type UpdateEntityRequest struct {
	Name         string         `json:"name" validate:"required"`
	EntityTypeID uuid.UUID      `json:"entity_type_id" validate:"uuid_required"`
	Email        *string        `json:"email" validate:"omitempty,email"`
	Address      *string        `json:"address"`
	Phones       []string       `json:"phones"`
	Additional   datatypes.JSON `json:"additional_info"`
	DateJoined   *string        `json:"date_joined"`
	TagIDs       []uuid.UUID    `json:"tag_ids"`
}

type AddRelationshipRequest struct {
	FromEntityID       uuid.UUID `json:"from_entity_id" validate:"uuid_required"`
	ToEntityID         uuid.UUID `json:"to_entity_id" validate:"uuid_required"`
	RelationshipTypeID uuid.UUID `json:"relationship_type_id" validate:"uuid_required"`
}

type entityService struct {
	entityRepo       repository.EntityRepository
	relationshipRepo repository.RelationshipRepository
	roleRepo         repository.RoleRepository
	usageRecorder
	db *gorm.DB
}

func NewEntityService(
	entityRepo repository.EntityRepository,
	relationshipRepo repository.RelationshipRepository,
	roleRepo repository.RoleRepository,
	usageLog repository.UsageLogRepository,
	db *gorm.DB,
	log *zap.Logger,
) EntityService {
	return &entityService{
		entityRepo:       entityRepo,
		relationshipRepo: relationshipRepo,
		roleRepo:         roleRepo,
		usageRecorder:    usageRecorder{usageLog: usageLog, log: log},
		db:               db,
	}
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, errors.New("invalid date format, use YYYY-MM-DD")
	}
	return &parsed, nil
}

// CreateEntity stores the entity together with its contact info. An entity
// always owns exactly one contact record.
func (s *entityService) CreateEntity(req *CreateEntityRequest, actorID string) (*model.Entity, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.entityRepo.FindTypeByID(req.EntityTypeID); err != nil {
		return nil, errors.New("entity type not found")
	}

	dateJoined, err := parseDate(req.DateJoined)
	if err != nil {
		return nil, err
	}

	contact := &model.ContactInfo{
		Email:   req.Email,
		Address: req.Address,
	}
	for _, phone := range req.Phones {
		contact.PhoneNumbers = append(contact.PhoneNumbers, model.ContactNumber{Phone: phone})
	}

	entity := &model.Entity{
		Name:         req.Name,
		EntityTypeID: req.EntityTypeID,
		ContactInfo:  contact,
		Additional:   req.Additional,
		DateJoined:   dateJoined,
	}

	if err := s.entityRepo.Create(entity); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefEntity, entity.ID, fmt.Sprintf("created entity '%s'", entity.Name))
	return entity, nil
}

func (s *entityService) UpdateEntity(id uuid.UUID, req *UpdateEntityRequest, actorID string) (*model.Entity, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	entity, err := s.entityRepo.FindByID(id)
	if err != nil {
		return nil, ErrEntityNotFound
	}

	dateJoined, err := parseDate(req.DateJoined)
	if err != nil {
		return nil, err
	}

	entity.Name = req.Name
	entity.EntityTypeID = req.EntityTypeID
	entity.Additional = req.Additional
	if dateJoined != nil {
		entity.DateJoined = dateJoined
	}

	if err := s.entityRepo.Update(entity); err != nil {
		return nil, err
	}

	if entity.ContactInfo != nil && (req.Email != nil || req.Address != nil || req.Phones != nil) {
		if req.Email != nil {
			entity.ContactInfo.Email = req.Email
		}
		if req.Address != nil {
			entity.ContactInfo.Address = *req.Address
		}
		var phones []model.ContactNumber
		if req.Phones != nil {
			for _, phone := range req.Phones {
				phones = append(phones, model.ContactNumber{Phone: phone})
			}
		}
		if err := s.entityRepo.UpdateContact(entity.ContactInfo, phones, req.Phones != nil); err != nil {
			return nil, err
		}
	}

	if req.TagIDs != nil {
		var tags []model.Tag
		if err := s.db.Where("id IN ?", req.TagIDs).Find(&tags).Error; err != nil {
			return nil, err
		}
		if err := s.entityRepo.ReplaceTags(entity, tags); err != nil {
			return nil, err
		}
		entity.Tags = tags
	}

	s.recordUsage(actorID, model.RefEntity, entity.ID, fmt.Sprintf("updated entity '%s'", entity.Name))
	return entity, nil
}

func (s *entityService) DeleteEntity(id uuid.UUID, hard bool, actorID string) error {
	if err := s.entityRepo.Delete(id, hard); err != nil {
		return err
	}
	s.recordUsage(actorID, model.RefEntity, id, "deleted entity")
	return nil
}

func (s *entityService) RestoreEntity(id uuid.UUID) error {
	return s.entityRepo.Restore(id)
}

func (s *entityService) GetAllEntities(includeDeleted bool) ([]model.Entity, error) {
	if includeDeleted {
		return s.entityRepo.FindAllWithDeleted()
	}
	return s.entityRepo.FindAll()
}

func (s *entityService) GetEntityByID(id uuid.UUID) (*model.Entity, error) {
	return s.entityRepo.FindByID(id)
}

func (s *entityService) AssignRole(entityID uuid.UUID, roleID uuid.UUID, actorID string) (*model.RoleAssignment, error) {
	if _, err := s.entityRepo.FindByID(entityID); err != nil {
		return nil, ErrEntityNotFound
	}
	role, err := s.roleRepo.FindByID(roleID)
	if err != nil {
		return nil, errors.New("role not found")
	}

	assignment := &model.RoleAssignment{
		EntityID: entityID,
		RoleID:   role.ID,
	}
	if err := s.relationshipRepo.CreateAssignment(assignment); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefEntity, entityID, fmt.Sprintf("assigned role '%s'", role.Code))
	return assignment, nil
}

func (s *entityService) UnassignRole(assignmentID uuid.UUID, actorID string) error {
	if err := s.relationshipRepo.DeleteAssignment(assignmentID); err != nil {
		return err
	}
	s.recordUsage(actorID, model.RefEntity, assignmentID, "removed role assignment")
	return nil
}

func (s *entityService) AddRelationship(req *AddRelationshipRequest, actorID string) (*model.EntityRelationship, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.FromEntityID == req.ToEntityID {
		return nil, errors.New("an entity cannot relate to itself")
	}

	rel := &model.EntityRelationship{
		FromEntityID:       req.FromEntityID,
		ToEntityID:         req.ToEntityID,
		RelationshipTypeID: req.RelationshipTypeID,
	}
	if err := s.relationshipRepo.CreateRelationship(rel); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefEntity, req.FromEntityID, "added entity relationship")
	return rel, nil
}

func (s *entityService) RemoveRelationship(relationshipID uuid.UUID, actorID string) error {
	if err := s.relationshipRepo.DeleteRelationship(relationshipID); err != nil {
		return err
	}
	s.recordUsage(actorID, model.RefEntity, relationshipID, "removed entity relationship")
	return nil
}

func (s *entityService) GetRelationships(entityID uuid.UUID) ([]model.EntityRelationship, error) {
	return s.relationshipRepo.FindByEntity(entityID)
}
