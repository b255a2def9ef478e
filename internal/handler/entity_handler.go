package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EntityHandler struct {
	service    service.EntityService
	entityRepo repository.EntityRepository
	relRepo    repository.RelationshipRepository
}

func NewEntityHandler(s service.EntityService, entityRepo repository.EntityRepository, relRepo repository.RelationshipRepository) *EntityHandler {
	return &EntityHandler{service: s, entityRepo: entityRepo, relRepo: relRepo}
}

func (h *EntityHandler) GetEntities(c *fiber.Ctx) error {
	entities, err := h.service.GetAllEntities(includeDeletedFlag(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch entities"})
	}
	return c.JSON(entities)
}

func (h *EntityHandler) GetEntity(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	entity, err := h.service.GetEntityByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Entity not found"})
	}
	return c.JSON(entity)
}

func (h *EntityHandler) CreateEntity(c *fiber.Ctx) error {
	var req service.CreateEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	entity, err := h.service.CreateEntity(&req, getActorID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Entity created", "data": entity})
}

func (h *EntityHandler) UpdateEntity(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	var req service.UpdateEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	entity, err := h.service.UpdateEntity(id, &req, getActorID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Entity updated", "data": entity})
}

func (h *EntityHandler) DeleteEntity(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	if err := h.service.DeleteEntity(id, hardFlag(c), getActorID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Entity deleted"})
}

func (h *EntityHandler) RestoreEntity(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	if err := h.service.RestoreEntity(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Entity restored"})
}

// ---- entity types ----

func (h *EntityHandler) GetEntityTypes(c *fiber.Ctx) error {
	types, err := h.entityRepo.FindAllTypes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch entity types"})
	}
	return c.JSON(types)
}

func (h *EntityHandler) CreateEntityType(c *fiber.Ctx) error {
	var entityType model.EntityType
	if err := c.BodyParser(&entityType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.entityRepo.CreateType(&entityType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Entity type created", "data": entityType})
}

// ---- tags ----

func (h *EntityHandler) GetTags(c *fiber.Ctx) error {
	tags, err := h.entityRepo.FindAllTags()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tags"})
	}
	return c.JSON(tags)
}

func (h *EntityHandler) CreateTag(c *fiber.Ctx) error {
	var tag model.Tag
	if err := c.BodyParser(&tag); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.entityRepo.CreateTag(&tag); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Tag created", "data": tag})
}

// ---- role assignments ----

func (h *EntityHandler) GetRoleAssignments(c *fiber.Ctx) error {
	entityID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	assignments, err := h.relRepo.FindAssignments(entityID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch role assignments"})
	}
	return c.JSON(assignments)
}

type assignRoleRequest struct {
	RoleID string `json:"role_id"`
}

func (h *EntityHandler) AssignRole(c *fiber.Ctx) error {
	entityID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	var req assignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	roleID, err := parseUUID(req.RoleID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	assignment, err := h.service.AssignRole(entityID, roleID, getActorID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Role assigned", "data": assignment})
}

func (h *EntityHandler) UnassignRole(c *fiber.Ctx) error {
	assignmentID, err := parseUUID(c.Params("assignmentId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}

	if err := h.service.UnassignRole(assignmentID, getActorID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Role assignment removed"})
}

// ---- relationships ----

func (h *EntityHandler) GetRelationshipTypes(c *fiber.Ctx) error {
	types, err := h.relRepo.FindAllTypes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch relationship types"})
	}
	return c.JSON(types)
}

func (h *EntityHandler) CreateRelationshipType(c *fiber.Ctx) error {
	var relType model.RelationshipType
	if err := c.BodyParser(&relType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.relRepo.CreateType(&relType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Relationship type created", "data": relType})
}

func (h *EntityHandler) GetRelationships(c *fiber.Ctx) error {
	entityID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entity ID"})
	}

	rels, err := h.service.GetRelationships(entityID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch relationships"})
	}
	return c.JSON(rels)
}

func (h *EntityHandler) AddRelationship(c *fiber.Ctx) error {
	var req service.AddRelationshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rel, err := h.service.AddRelationship(&req, getActorID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Relationship added", "data": rel})
}

func (h *EntityHandler) RemoveRelationship(c *fiber.Ctx) error {
	relID, err := parseUUID(c.Params("relationshipId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid relationship ID"})
	}

	if err := h.service.RemoveRelationship(relID, getActorID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Relationship removed"})
}
