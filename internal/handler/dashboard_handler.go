package handler

import (
	"time"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetStockMovement returns aggregated transfer volume per day. Defaults to
// the last 30 days when no range is given.
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -30)

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start_date, expected YYYY-MM-DD"})
		}
		startDate = parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end_date, expected YYYY-MM-DD"})
		}
		endDate = parsed
	}

	movement, err := h.service.GetStockMovement(startDate, endDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movement"})
	}
	return c.JSON(movement)
}
