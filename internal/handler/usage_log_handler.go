package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const defaultLogLimit = 100

type UsageLogHandler struct {
	repo repository.UsageLogRepository
}

func NewUsageLogHandler(repo repository.UsageLogRepository) *UsageLogHandler {
	return &UsageLogHandler{repo: repo}
}

func (h *UsageLogHandler) GetLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logs, err := h.repo.FindAll(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch usage logs"})
	}
	return c.JSON(logs)
}

func (h *UsageLogHandler) GetLogsByUser(c *fiber.Ctx) error {
	userID, err := parseUUID(c.Params("userId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	limit := c.QueryInt("limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logs, err := h.repo.FindByUser(userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch usage logs"})
	}
	return c.JSON(logs)
}

func (h *UsageLogHandler) GetLogsByTarget(c *fiber.Ctx) error {
	targetID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid target ID"})
	}

	ref := model.Ref{Kind: model.RefKind(c.Params("kind")), ID: targetID}
	if err := ref.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	logs, err := h.repo.FindByTarget(ref.Kind, ref.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch usage logs"})
	}
	return c.JSON(logs)
}
