package stockinward

import (
	"context"
	"fmt"
	"time"

	corecontext "loomstock/internal/core/context"
	"loomstock/internal/core/id"
	"loomstock/internal/core/tx"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/ledger"
	"loomstock/pkg/logger"
	"loomstock/pkg/numerator"
)

// Repository defines stock inward persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *StockInward) error
	GetByID(ctx context.Context, docID id.ID) (*StockInward, error)
	List(ctx context.Context) ([]*StockInward, error)
}

// Ledger is the slice of the ledger service inward movements need.
type Ledger interface {
	ApplyDelta(ctx context.Context, key ledger.Key, delta types.Quantity, denorm ledger.Denorm) (types.Quantity, error)
}

// WarehouseLookup resolves a warehouse id to its name for balance rows.
type WarehouseLookup interface {
	WarehouseName(ctx context.Context, warehouseID string) (string, error)
}

// Service provides business operations for stock inward documents.
type Service struct {
	repo       Repository
	ledger     Ledger
	warehouses WarehouseLookup
	numerator  numerator.Generator
	txManager  tx.Manager
}

// NewService creates a new stock inward service.
func NewService(repo Repository, ldg Ledger, warehouses WarehouseLookup, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, ledger: ldg, warehouses: warehouses, numerator: gen, txManager: txManager}
}

// Create persists the inward document and adds its quantity to the stock
// balance in the same transaction.
func (s *Service) Create(ctx context.Context, doc *StockInward) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.InwardNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesInward)
		if err != nil {
			return fmt.Errorf("generate inward number: %w", err)
		}
		doc.InwardNo = number
	}
	if doc.Status == "" {
		doc.Status = "Completed"
	}
	if doc.CreatedBy == "" {
		doc.CreatedBy = corecontext.GetUserID(ctx)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	// Warehouse name is denormalized onto the balance row on first insert.
	// A missing warehouse leaves the name empty rather than failing the inward.
	warehouseName, err := s.warehouses.WarehouseName(ctx, doc.WarehouseID)
	if err != nil {
		warehouseName = ""
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create stock inward: %w", err)
		}
		_, err := s.ledger.ApplyDelta(ctx,
			ledger.Key{ItemID: doc.ItemID, WarehouseID: doc.WarehouseID},
			doc.Qty,
			ledger.Denorm{ItemName: doc.ItemName, WarehouseName: warehouseName, UOM: doc.UOM},
		)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "stock inward created",
		"id", doc.ID, "inward_no", doc.InwardNo, "item_id", doc.ItemID, "qty", doc.Qty.Float64())
	return nil
}

// GetByID retrieves a stock inward document.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StockInward, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all stock inward documents.
func (s *Service) List(ctx context.Context) ([]*StockInward, error) {
	return s.repo.List(ctx)
}
