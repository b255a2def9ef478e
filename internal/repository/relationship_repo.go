package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RelationshipRepository interface {
	FindAllTypes() ([]model.RelationshipType, error)
	CreateType(t *model.RelationshipType) error

	FindByEntity(entityID uuid.UUID) ([]model.EntityRelationship, error)
	CreateRelationship(rel *model.EntityRelationship) error
	DeleteRelationship(id uuid.UUID) error

	FindAssignments(entityID uuid.UUID) ([]model.RoleAssignment, error)
	CreateAssignment(a *model.RoleAssignment) error
	DeleteAssignment(id uuid.UUID) error
}

type relationshipRepo struct {
	db *gorm.DB
}

func NewRelationshipRepo(db *gorm.DB) RelationshipRepository {
	return &relationshipRepo{db}
}

func (r *relationshipRepo) FindAllTypes() ([]model.RelationshipType, error) {
	var types []model.RelationshipType
	err := Active(r.db).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *relationshipRepo) CreateType(t *model.RelationshipType) error {
	return r.db.Create(t).Error
}

func (r *relationshipRepo) FindByEntity(entityID uuid.UUID) ([]model.EntityRelationship, error) {
	var rels []model.EntityRelationship
	err := r.db.
		Preload("FromEntity").Preload("ToEntity").Preload("RelationshipType").
		Where("from_entity_id = ? OR to_entity_id = ?", entityID, entityID).
		Order("created_at DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationshipRepo) CreateRelationship(rel *model.EntityRelationship) error {
	return r.db.Create(rel).Error
}

func (r *relationshipRepo) DeleteRelationship(id uuid.UUID) error {
	return r.db.Delete(&model.EntityRelationship{}, "id = ?", id).Error
}

func (r *relationshipRepo) FindAssignments(entityID uuid.UUID) ([]model.RoleAssignment, error) {
	var assignments []model.RoleAssignment
	err := r.db.Preload("Role").
		Where("entity_id = ?", entityID).
		Order("assigned_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *relationshipRepo) CreateAssignment(a *model.RoleAssignment) error {
	return r.db.Create(a).Error
}

func (r *relationshipRepo) DeleteAssignment(id uuid.UUID) error {
	return r.db.Delete(&model.RoleAssignment{}, "id = ?", id).Error
}
