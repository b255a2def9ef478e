package handler

import (
	"errors"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StocktakingHandler struct {
	service service.StocktakingService
}

func NewStocktakingHandler(s service.StocktakingService) *StocktakingHandler {
	return &StocktakingHandler{service: s}
}

func (h *StocktakingHandler) GetStocktakings(c *fiber.Ctx) error {
	if warehouseParam := c.Query("warehouse_id"); warehouseParam != "" {
		warehouseID, err := parseUUID(warehouseParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
		}
		stocktakings, err := h.service.GetStocktakingsByWarehouse(warehouseID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stocktakings"})
		}
		return c.JSON(stocktakings)
	}

	stocktakings, err := h.service.GetAllStocktakings()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stocktakings"})
	}
	return c.JSON(stocktakings)
}

func (h *StocktakingHandler) GetStocktaking(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid stocktaking ID"})
	}

	resp, err := h.service.GetStocktakingByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Stocktaking not found"})
	}
	return c.JSON(resp)
}

func (h *StocktakingHandler) CreateStocktaking(c *fiber.Ctx) error {
	var req service.CreateStocktakingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	stocktaking, err := h.service.CreateStocktaking(&req, getActorID(c))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateStocktakingItem) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Stocktaking recorded", "data": stocktaking})
}
