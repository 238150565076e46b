package stocktransfer

import (
	"context"
	"fmt"
	"time"

	corecontext "loomstock/internal/core/context"
	"loomstock/internal/core/id"
	"loomstock/internal/core/tx"
	"loomstock/internal/domain/approval"
	"loomstock/pkg/logger"
	"loomstock/pkg/numerator"
)

// Repository defines stock transfer persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *StockTransfer) error
	GetByID(ctx context.Context, docID id.ID) (*StockTransfer, error)
	List(ctx context.Context) ([]*StockTransfer, error)
	UpdateApproval(ctx context.Context, docID id.ID, fields approval.Fields) error
}

// Service provides business operations for stock transfer documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new stock transfer service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, numerator: gen, txManager: txManager}
}

// Create persists a transfer in Pending status.
func (s *Service) Create(ctx context.Context, doc *StockTransfer) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.TransferNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesTransfer)
		if err != nil {
			return fmt.Errorf("generate transfer number: %w", err)
		}
		doc.TransferNo = number
	}
	if doc.Status == "" {
		doc.Status = approval.InitialStatus(approval.DocTypeStockTransfer)
	}
	if doc.CreatedBy == "" {
		doc.CreatedBy = corecontext.GetUserID(ctx)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return fmt.Errorf("create stock transfer: %w", err)
	}

	logger.Info(ctx, "stock transfer created", "id", doc.ID, "transfer_no", doc.TransferNo)
	return nil
}

// Approve moves a pending transfer to Approved.
func (s *Service) Approve(ctx context.Context, docID id.ID) error {
	return s.decide(ctx, docID, true)
}

// Reject moves a pending transfer to Rejected.
func (s *Service) Reject(ctx context.Context, docID id.ID) error {
	return s.decide(ctx, docID, false)
}

func (s *Service) decide(ctx context.Context, docID id.ID, approve bool) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	approver := corecontext.GetUserID(ctx)
	now := time.Now()
	if approve {
		err = doc.Approve(approval.DocTypeStockTransfer, approver, now)
	} else {
		err = doc.Reject(approval.DocTypeStockTransfer, approver, now)
	}
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateApproval(ctx, docID, doc.Fields)
	})
	if err != nil {
		return fmt.Errorf("update transfer approval: %w", err)
	}

	logger.Info(ctx, "stock transfer decided",
		"id", docID, "transfer_no", doc.TransferNo, "status", doc.Status)
	return nil
}

// GetByID retrieves a stock transfer.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StockTransfer, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all stock transfers.
func (s *Service) List(ctx context.Context) ([]*StockTransfer, error) {
	return s.repo.List(ctx)
}
