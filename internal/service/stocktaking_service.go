package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrDuplicateStocktakingItem = errors.New("inventory already counted in this stocktaking")

type StocktakingService interface {
	CreateStocktaking(req *CreateStocktakingRequest, actorID string) (*model.Stocktaking, error)
	GetAllStocktakings() ([]model.Stocktaking, error)
	GetStocktakingsByWarehouse(warehouseID uuid.UUID) ([]model.Stocktaking, error)
	GetStocktakingByID(id uuid.UUID) (*StocktakingResponse, error)
}

type CreateStocktakingRequest struct {
	WarehouseID uuid.UUID                `json:"warehouse_id" validate:"uuid_required"`
	Date        *time.Time               `json:"date"`
	Notes       string                   `json:"notes"`
	Items       []StocktakingItemRequest `json:"items" validate:"required,min=1,dive"`
}

type StocktakingItemRequest struct {
	InventoryID     uuid.UUID       `json:"inventory_id" validate:"uuid_required"`
	CountedQuantity decimal.Decimal `json:"counted_quantity"`
}

// StocktakingResponse reports each item's discrepancy alongside the event.
type StocktakingResponse struct {
	Stocktaking *model.Stocktaking `json:"stocktaking"`
	Items       []StocktakingItemResponse
}

type StocktakingItemResponse struct {
	Item        model.StocktakingItem `json:"item"`
	Discrepancy decimal.Decimal       `json:"discrepancy"`
}

type stocktakingService struct {
	stocktakingRepo repository.StocktakingRepository
	inventoryRepo   repository.InventoryRepository
	warehouseRepo   repository.WarehouseRepository
	usageRecorder
}

func NewStocktakingService(
	stRepo repository.StocktakingRepository,
	invRepo repository.InventoryRepository,
	whRepo repository.WarehouseRepository,
	usageLog repository.UsageLogRepository,
	log *zap.Logger,
) StocktakingService {
	return &stocktakingService{
		stocktakingRepo: stRepo,
		inventoryRepo:   invRepo,
		warehouseRepo:   whRepo,
		usageRecorder:   usageRecorder{usageLog: usageLog, log: log},
	}
}

// CreateStocktaking snapshots each inventory's current quantity as the
// recorded quantity, so the discrepancy is always counted minus what the
// system believed at counting time.
func (s *stocktakingService) CreateStocktaking(req *CreateStocktakingRequest, actorID string) (*model.Stocktaking, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.warehouseRepo.FindByID(req.WarehouseID); err != nil {
		return nil, errors.New("warehouse not found")
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	stocktaking := &model.Stocktaking{
		WarehouseID: req.WarehouseID,
		Date:        date,
		Notes:       req.Notes,
	}

	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, itemReq := range req.Items {
		if seen[itemReq.InventoryID] {
			return nil, ErrDuplicateStocktakingItem
		}
		seen[itemReq.InventoryID] = true

		inventory, err := s.inventoryRepo.FindByID(itemReq.InventoryID)
		if err != nil {
			return nil, ErrInventoryNotFound
		}

		stocktaking.Items = append(stocktaking.Items, model.StocktakingItem{
			InventoryID:      inventory.ID,
			RecordedQuantity: inventory.Quantity,
			CountedQuantity:  itemReq.CountedQuantity,
		})
	}

	if err := s.stocktakingRepo.Create(stocktaking); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefStocktaking, stocktaking.ID,
		fmt.Sprintf("stocktaking with %d items", len(stocktaking.Items)))
	return stocktaking, nil
}

func (s *stocktakingService) GetAllStocktakings() ([]model.Stocktaking, error) {
	return s.stocktakingRepo.FindAll()
}

func (s *stocktakingService) GetStocktakingsByWarehouse(warehouseID uuid.UUID) ([]model.Stocktaking, error) {
	return s.stocktakingRepo.FindByWarehouse(warehouseID)
}

func (s *stocktakingService) GetStocktakingByID(id uuid.UUID) (*StocktakingResponse, error) {
	stocktaking, err := s.stocktakingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := &StocktakingResponse{Stocktaking: stocktaking}
	for _, item := range stocktaking.Items {
		resp.Items = append(resp.Items, StocktakingItemResponse{
			Item:        item,
			Discrepancy: item.Discrepancy(),
		})
	}
	return resp, nil
}
