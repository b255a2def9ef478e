package service

import (
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type entityEnv struct {
	svc        EntityService
	db         *gorm.DB
	entityType *model.EntityType
	roleRepo   repository.RoleRepository
}

func newEntityEnv(t *testing.T) *entityEnv {
	t.Helper()
	db := setupTestDB(t)

	entityRepo := repository.NewEntityRepo(db)
	relationshipRepo := repository.NewRelationshipRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	usageRepo := repository.NewUsageLogRepo(db)
	svc := NewEntityService(entityRepo, relationshipRepo, roleRepo, usageRepo, db, zap.NewNop())

	entityType := &model.EntityType{Name: "Supplier"}
	require.NoError(t, db.Create(entityType).Error)

	return &entityEnv{svc: svc, db: db, entityType: entityType, roleRepo: roleRepo}
}

func (e *entityEnv) createEntity(t *testing.T, name string) *model.Entity {
	t.Helper()
	email := name + "@example.com"
	entity, err := e.svc.CreateEntity(&CreateEntityRequest{
		Name:         name,
		EntityTypeID: e.entityType.ID,
		Email:        &email,
		Phones:       []string{"+100200300"},
	}, "tester")
	require.NoError(t, err)
	return entity
}

func TestCreateEntityStoresContactInfo(t *testing.T) {
	env := newEntityEnv(t)

	entity := env.createEntity(t, "Acme")

	reloaded, err := env.svc.GetEntityByID(entity.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ContactInfo)
	require.NotNil(t, reloaded.ContactInfo.Email)
	assert.Equal(t, "Acme@example.com", *reloaded.ContactInfo.Email)
	require.Len(t, reloaded.ContactInfo.PhoneNumbers, 1)
	assert.Equal(t, "+100200300", reloaded.ContactInfo.PhoneNumbers[0].Phone)
}

func TestCreateEntityUnknownType(t *testing.T) {
	env := newEntityEnv(t)

	_, err := env.svc.CreateEntity(&CreateEntityRequest{
		Name:         "Acme",
		EntityTypeID: uuid.New(),
	}, "tester")
	assert.EqualError(t, err, "entity type not found")
}

func TestCreateEntityBadDate(t *testing.T) {
	env := newEntityEnv(t)

	bad := "23-08-2026"
	_, err := env.svc.CreateEntity(&CreateEntityRequest{
		Name:         "Acme",
		EntityTypeID: env.entityType.ID,
		DateJoined:   &bad,
	}, "tester")
	assert.EqualError(t, err, "invalid date format, use YYYY-MM-DD")
}

func TestAssignAndUnassignRole(t *testing.T) {
	env := newEntityEnv(t)
	entity := env.createEntity(t, "Acme")

	role := &model.Role{Code: "ROLE_AUDITOR", Name: "Auditor"}
	require.NoError(t, env.roleRepo.Create(role))

	assignment, err := env.svc.AssignRole(entity.ID, role.ID, "tester")
	require.NoError(t, err)
	assert.Equal(t, entity.ID, assignment.EntityID)
	assert.Equal(t, role.ID, assignment.RoleID)

	require.NoError(t, env.svc.UnassignRole(assignment.ID, "tester"))
}

func TestAssignRoleUnknownRole(t *testing.T) {
	env := newEntityEnv(t)
	entity := env.createEntity(t, "Acme")

	_, err := env.svc.AssignRole(entity.ID, uuid.New(), "tester")
	assert.EqualError(t, err, "role not found")
}

func TestAddRelationshipRejectsSelfRelation(t *testing.T) {
	env := newEntityEnv(t)
	entity := env.createEntity(t, "Acme")

	relType := &model.RelationshipType{Name: "supplies"}
	require.NoError(t, env.db.Create(relType).Error)

	_, err := env.svc.AddRelationship(&AddRelationshipRequest{
		FromEntityID:       entity.ID,
		ToEntityID:         entity.ID,
		RelationshipTypeID: relType.ID,
	}, "tester")
	assert.EqualError(t, err, "an entity cannot relate to itself")
}

func TestAddRelationshipAndListByEntity(t *testing.T) {
	env := newEntityEnv(t)
	acme := env.createEntity(t, "Acme")
	globex := env.createEntity(t, "Globex")

	relType := &model.RelationshipType{Name: "supplies"}
	require.NoError(t, env.db.Create(relType).Error)

	rel, err := env.svc.AddRelationship(&AddRelationshipRequest{
		FromEntityID:       acme.ID,
		ToEntityID:         globex.ID,
		RelationshipTypeID: relType.ID,
	}, "tester")
	require.NoError(t, err)

	// Visible from both sides.
	fromSide, err := env.svc.GetRelationships(acme.ID)
	require.NoError(t, err)
	require.Len(t, fromSide, 1)
	assert.Equal(t, rel.ID, fromSide[0].ID)

	toSide, err := env.svc.GetRelationships(globex.ID)
	require.NoError(t, err)
	assert.Len(t, toSide, 1)
}

func TestUpdateEntityReplacesContactInfo(t *testing.T) {
	env := newEntityEnv(t)
	entity := env.createEntity(t, "Acme")

	email := "sales@acme.example.com"
	address := "12 Dock Road"
	_, err := env.svc.UpdateEntity(entity.ID, &UpdateEntityRequest{
		Name:         "Acme",
		EntityTypeID: env.entityType.ID,
		Email:        &email,
		Address:      &address,
		Phones:       []string{"+111", "+222"},
	}, "tester")
	require.NoError(t, err)

	reloaded, err := env.svc.GetEntityByID(entity.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ContactInfo)
	require.NotNil(t, reloaded.ContactInfo.Email)
	assert.Equal(t, email, *reloaded.ContactInfo.Email)
	assert.Equal(t, address, reloaded.ContactInfo.Address)
	assert.Len(t, reloaded.ContactInfo.PhoneNumbers, 2)
}

func TestDeleteEntitySoftThenRestore(t *testing.T) {
	env := newEntityEnv(t)
	entity := env.createEntity(t, "Acme")

	require.NoError(t, env.svc.DeleteEntity(entity.ID, false, "tester"))

	_, err := env.svc.GetEntityByID(entity.ID)
	assert.Error(t, err)

	all, err := env.svc.GetAllEntities(true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, env.svc.RestoreEntity(entity.ID))
	_, err = env.svc.GetEntityByID(entity.ID)
	assert.NoError(t, err)
}
