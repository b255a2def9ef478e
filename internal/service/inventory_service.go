package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInventoryNotFound  = errors.New("inventory not found")
	ErrInsufficientStock  = errors.New("insufficient stock remaining")
	ErrTransferSameRecord = errors.New("cannot transfer inventory to itself")
	ErrNonPositiveAmount  = errors.New("transfer quantity must be greater than zero")
)

type InventoryService interface {
	CreateInventory(req *InventoryRequest, actorID string) (*model.Inventory, error)
	UpdateInventory(id uuid.UUID, req *InventoryRequest, actorID string) (*model.Inventory, error)
	DeleteInventory(id uuid.UUID, hard bool, actorID string) error
	RestoreInventory(id uuid.UUID) error
	GetAllInventories(includeDeleted bool) ([]model.Inventory, error)
	GetInventoryByID(id uuid.UUID) (*model.Inventory, error)
	GetHistory(inventoryID uuid.UUID) ([]model.InventoryHistory, error)
	Transfer(req *TransferRequest, actorID string) error
}

type InventoryRequest struct {
	WarehouseID  uuid.UUID       `json:"warehouse_id" validate:"uuid_required"`
	ProductID    uuid.UUID       `json:"product_id" validate:"uuid_required"`
	AttributesID uuid.UUID       `json:"attributes_id" validate:"uuid_required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type TransferRequest struct {
	FromInventoryID uuid.UUID       `json:"from_inventory_id" validate:"uuid_required"`
	ToInventoryID   uuid.UUID       `json:"to_inventory_id" validate:"uuid_required"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes"`
	Source          model.Ref       `json:"source"`
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	usageRecorder
	db    *gorm.DB
	wsHub *ws.Hub
	log   *zap.Logger
}

func NewInventoryService(
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	usageLog repository.UsageLogRepository,
	db *gorm.DB,
	hub *ws.Hub,
	log *zap.Logger,
) InventoryService {
	return &inventoryService{
		inventoryRepo: invRepo,
		productRepo:   productRepo,
		usageRecorder: usageRecorder{usageLog: usageLog, log: log},
		db:            db,
		wsHub:         hub,
		log:           log,
	}
}

// validate runs the inventory consistency checks: an indivisible product
// rejects fractional quantities, and the (warehouse, product, attributes)
// triple must be unique — excluding the record's own id so in-place updates
// pass.
func (s *inventoryService) validate(req *InventoryRequest, excludeID uuid.UUID) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return errors.New("product not found")
	}
	if !product.Divisible() && !req.Quantity.IsInteger() {
		return model.ErrIndivisibleQuantity
	}

	duplicate, err := s.inventoryRepo.DuplicateExists(req.WarehouseID, req.ProductID, req.AttributesID, excludeID)
	if err != nil {
		return err
	}
	if duplicate {
		return model.ErrDuplicateInventory
	}
	return nil
}

func (s *inventoryService) CreateInventory(req *InventoryRequest, actorID string) (*model.Inventory, error) {
	if err := s.validate(req, uuid.Nil); err != nil {
		return nil, err
	}

	inventory := &model.Inventory{
		WarehouseID:  req.WarehouseID,
		ProductID:    req.ProductID,
		AttributesID: req.AttributesID,
		Quantity:     req.Quantity,
	}
	if err := s.inventoryRepo.Create(inventory); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefInventory, inventory.ID, "created inventory")
	return inventory, nil
}

func (s *inventoryService) UpdateInventory(id uuid.UUID, req *InventoryRequest, actorID string) (*model.Inventory, error) {
	inventory, err := s.inventoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}

	if err := s.validate(req, id); err != nil {
		return nil, err
	}

	inventory.WarehouseID = req.WarehouseID
	inventory.ProductID = req.ProductID
	inventory.AttributesID = req.AttributesID
	inventory.Quantity = req.Quantity

	if err := s.inventoryRepo.Update(inventory); err != nil {
		return nil, err
	}

	s.recordUsage(actorID, model.RefInventory, inventory.ID, "updated inventory")
	return inventory, nil
}

func (s *inventoryService) DeleteInventory(id uuid.UUID, hard bool, actorID string) error {
	if err := s.inventoryRepo.Delete(id, hard); err != nil {
		return err
	}
	s.recordUsage(actorID, model.RefInventory, id, "deleted inventory")
	return nil
}

func (s *inventoryService) RestoreInventory(id uuid.UUID) error {
	return s.inventoryRepo.Restore(id)
}

func (s *inventoryService) GetAllInventories(includeDeleted bool) ([]model.Inventory, error) {
	if includeDeleted {
		return s.inventoryRepo.FindAllWithDeleted()
	}
	return s.inventoryRepo.FindAll()
}

func (s *inventoryService) GetInventoryByID(id uuid.UUID) (*model.Inventory, error) {
	return s.inventoryRepo.FindByID(id)
}

func (s *inventoryService) GetHistory(inventoryID uuid.UUID) ([]model.InventoryHistory, error) {
	return s.inventoryRepo.FindHistory(inventoryID)
}

// lockForUpdate takes a row lock so concurrent transfers from the same
// inventory serialize on the stock check. SQLite has no row locks (the whole
// database serializes writers) and rejects the clause, so it is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Transfer moves quantity between two inventories in one DB transaction and
// appends the paired ledger rows: transfer_out on the source referencing the
// destination, transfer_in on the destination referencing the source.
func (s *inventoryService) Transfer(req *TransferRequest, actorID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.FromInventoryID == req.ToInventoryID {
		return ErrTransferSameRecord
	}
	if !req.Quantity.IsPositive() {
		return ErrNonPositiveAmount
	}
	if err := req.Source.Validate(); err != nil {
		return err
	}

	var from, to model.Inventory

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Preload("Product").
			First(&from, "id = ? AND deleted_at IS NULL", req.FromInventoryID).Error; err != nil {
			return ErrInventoryNotFound
		}
		if err := lockForUpdate(tx).
			Preload("Product").
			First(&to, "id = ? AND deleted_at IS NULL", req.ToInventoryID).Error; err != nil {
			return ErrInventoryNotFound
		}

		if from.Quantity.LessThan(req.Quantity) {
			return ErrInsufficientStock
		}

		from.Quantity = from.Quantity.Sub(req.Quantity)
		to.Quantity = to.Quantity.Add(req.Quantity)

		if err := from.CheckQuantity(); err != nil {
			return err
		}
		if err := to.CheckQuantity(); err != nil {
			return err
		}

		if err := tx.Model(&model.Inventory{}).Where("id = ?", from.ID).
			Update("quantity", from.Quantity).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Inventory{}).Where("id = ?", to.ID).
			Update("quantity", to.Quantity).Error; err != nil {
			return err
		}

		out := &model.InventoryHistory{
			InventoryID:        from.ID,
			ChangeType:         model.TransferOut,
			ChangeQuantity:     req.Quantity,
			RelatedInventoryID: &to.ID,
			Source:             req.Source,
			Notes:              req.Notes,
		}
		if err := s.inventoryRepo.AppendHistory(tx, out); err != nil {
			return err
		}

		in := &model.InventoryHistory{
			InventoryID:        to.ID,
			ChangeType:         model.TransferIn,
			ChangeQuantity:     req.Quantity,
			RelatedInventoryID: &from.ID,
			Source:             req.Source,
			Notes:              req.Notes,
		}
		return s.inventoryRepo.AppendHistory(tx, in)
	})
	if err != nil {
		return err
	}

	s.recordUsage(actorID, model.RefInventory, from.ID,
		fmt.Sprintf("transferred %s to inventory %s", req.Quantity.String(), to.ID))

	go func() {
		payload := map[string]interface{}{
			"type":   "inventory_update",
			"action": "transfer",
			"transfer": map[string]interface{}{
				"from_inventory_id": from.ID,
				"to_inventory_id":   to.ID,
				"quantity":          req.Quantity.String(),
				"from_remaining":    from.Quantity.String(),
				"to_total":          to.Quantity.String(),
			},
			"actor": actorID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return nil
}
