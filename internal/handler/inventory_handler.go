package handler

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventories(c *fiber.Ctx) error {
	inventories, err := h.service.GetAllInventories(includeDeletedFlag(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventories"})
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	inventory, err := h.service.GetInventoryByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory not found"})
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var req service.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inventory, err := h.service.CreateInventory(&req, getActorID(c))
	if err != nil {
		if errors.Is(err, model.ErrDuplicateInventory) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inventory created", "data": inventory})
}

func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	var req service.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inventory, err := h.service.UpdateInventory(id, &req, getActorID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInventoryNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, model.ErrDuplicateInventory):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inventory updated", "data": inventory})
}

func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	if err := h.service.DeleteInventory(id, hardFlag(c), getActorID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inventory deleted"})
}

func (h *InventoryHandler) RestoreInventory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	if err := h.service.RestoreInventory(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inventory restored"})
}

func (h *InventoryHandler) GetHistory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	history, err := h.service.GetHistory(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch history"})
	}
	return c.JSON(history)
}

func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var req service.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Transfer(&req, getActorID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrInventoryNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInsufficientStock):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Transfer completed"})
}
