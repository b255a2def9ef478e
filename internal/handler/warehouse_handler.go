package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type WarehouseHandler struct {
	repo repository.WarehouseRepository
}

func NewWarehouseHandler(repo repository.WarehouseRepository) *WarehouseHandler {
	return &WarehouseHandler{repo: repo}
}

func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	var (
		warehouses []model.Warehouse
		err        error
	)
	if includeDeletedFlag(c) {
		warehouses, err = h.repo.FindAllWithDeleted()
	} else {
		warehouses, err = h.repo.FindAll()
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch warehouses"})
	}
	return c.JSON(warehouses)
}

func (h *WarehouseHandler) GetWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	warehouse, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}
	return c.JSON(warehouse)
}

func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.repo.Create(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	var req model.Warehouse
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.Location = req.Location
	existing.ParentID = req.ParentID
	existing.ManagerID = req.ManagerID

	if err := h.repo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": existing})
}

func (h *WarehouseHandler) DeleteWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	if err := h.repo.Delete(id, hardFlag(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Warehouse deleted"})
}

func (h *WarehouseHandler) RestoreWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	if err := h.repo.Restore(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Warehouse restored"})
}

// ---- partners ----

func (h *WarehouseHandler) GetPartners(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	partners, err := h.repo.FindPartners(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch partners"})
	}
	return c.JSON(partners)
}

func (h *WarehouseHandler) AddPartner(c *fiber.Ctx) error {
	warehouseID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	var partner model.WarehousePartner
	if err := c.BodyParser(&partner); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	partner.WarehouseID = warehouseID

	if err := h.repo.CreatePartner(&partner); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Partner added", "data": partner})
}

func (h *WarehouseHandler) RemovePartner(c *fiber.Ctx) error {
	partnerID, err := parseUUID(c.Params("partnerId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid partner ID"})
	}

	if err := h.repo.DeletePartner(partnerID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Partner removed"})
}
