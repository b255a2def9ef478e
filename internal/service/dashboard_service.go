package service

import (
	"time"

	"go-stockroom/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	inventoryRepo repository.InventoryRepository
}

func NewDashboardService(inventoryRepo repository.InventoryRepository) DashboardService {
	return &dashboardService{inventoryRepo: inventoryRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.inventoryRepo.GetDashboardStats()
}

func (s *dashboardService) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return s.inventoryRepo.GetStockMovement(startDate, endDate)
}
