package adjustment

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

// Repository defines stock adjustment persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *Adjustment) error
	GetByID(ctx context.Context, docID id.ID) (*Adjustment, error)
	List(ctx context.Context) ([]*Adjustment, error)
	UpdateApproval(ctx context.Context, docID id.ID, fields approval.Fields) error
}

// Service provides business operations for stock adjustment documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new adjustment service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, numerator: gen, txManager: txManager}
}

// Create persists an adjustment in Pending status.
func (s *Service) Create(ctx context.Context, doc *Adjustment) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.AdjustmentNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesAdjustment)
		if err != nil {
			return fmt.Errorf("generate adjustment number: %w", err)
		}
		doc.AdjustmentNo = number
	}
	if doc.Status == "" {
		doc.Status = approval.InitialStatus(approval.DocTypeStockAdjustment)
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
		return fmt.Errorf("create adjustment: %w", err)
	}

	logger.Info(ctx, "stock adjustment created",
		"id", doc.ID, "adjustment_no", doc.AdjustmentNo, "reason", doc.Reason)
	return nil
}

// Approve moves a pending adjustment to Approved.
func (s *Service) Approve(ctx context.Context, docID id.ID) error {
	return s.decide(ctx, docID, true)
}

// Reject moves a pending adjustment to Rejected.
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
		err = doc.Approve(approval.DocTypeStockAdjustment, approver, now)
	} else {
		err = doc.Reject(approval.DocTypeStockAdjustment, approver, now)
	}
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateApproval(ctx, docID, doc.Fields)
	})
	if err != nil {
		return fmt.Errorf("update adjustment approval: %w", err)
	}

	logger.Info(ctx, "stock adjustment decided",
		"id", docID, "adjustment_no", doc.AdjustmentNo, "status", doc.Status)
	return nil
}

// GetByID retrieves an adjustment.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Adjustment, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all adjustments.
func (s *Service) List(ctx context.Context) ([]*Adjustment, error) {
	return s.repo.List(ctx)
}
