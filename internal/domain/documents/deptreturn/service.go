package deptreturn

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

// Repository defines return persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *Return) error
	GetByID(ctx context.Context, docID id.ID) (*Return, error)
	List(ctx context.Context) ([]*Return, error)
}

// Ledger is the slice of the ledger service returns need.
type Ledger interface {
	ApplyDelta(ctx context.Context, key ledger.Key, delta types.Quantity, denorm ledger.Denorm) (types.Quantity, error)
}

// Service provides business operations for department return documents.
type Service struct {
	repo      Repository
	ledger    Ledger
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new return service.
func NewService(repo Repository, ldg Ledger, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, ledger: ldg, numerator: gen, txManager: txManager}
}

// Create persists the return and, for Good condition only, adds the
// returned quantity back to the stock balance in the same transaction.
func (s *Service) Create(ctx context.Context, doc *Return) error {
	if doc.Condition == "" {
		doc.Condition = ConditionGood
	}
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.ReturnNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesReturn)
		if err != nil {
			return fmt.Errorf("generate return number: %w", err)
		}
		doc.ReturnNo = number
	}
	if doc.ReturnedBy == "" {
		doc.ReturnedBy = corecontext.GetUserID(ctx)
	}
	if doc.ReturnedAt.IsZero() {
		doc.ReturnedAt = time.Now().UTC()
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create return: %w", err)
		}
		if !doc.Restocks() {
			return nil
		}
		_, err := s.ledger.ApplyDelta(ctx,
			ledger.Key{ItemID: doc.ItemID, WarehouseID: doc.WarehouseID},
			doc.QtyReturned,
			ledger.Denorm{ItemName: doc.ItemName, UOM: doc.UOM},
		)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "department return created",
		"id", doc.ID, "return_no", doc.ReturnNo, "condition", doc.Condition,
		"restocked", doc.Restocks())
	return nil
}

// GetByID retrieves a return document.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Return, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all return documents.
func (s *Service) List(ctx context.Context) ([]*Return, error) {
	return s.repo.List(ctx)
}
