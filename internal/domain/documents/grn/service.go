package grn

import (
	"context"
	"fmt"
	"time"

	corecontext "loomstock/internal/core/context"
	"loomstock/internal/core/id"
	"loomstock/internal/core/tx"
	"loomstock/pkg/logger"
	"loomstock/pkg/numerator"
)

// ListFilter restricts GRN listings.
type ListFilter struct {
	POID   string
	Status string
}

// Repository defines GRN persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *GRN) error
	GetByID(ctx context.Context, docID id.ID) (*GRN, error)
	List(ctx context.Context, filter ListFilter) ([]*GRN, error)
	// UpdateStatus changes only the status column; used by quality checks.
	UpdateStatus(ctx context.Context, docID id.ID, status string) error
}

// Service provides business operations for GRN documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new GRN service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, numerator: gen, txManager: txManager}
}

// Create persists a new GRN. The document number is drawn from the GRN
// series when absent and the status always starts at Pending QC.
func (s *Service) Create(ctx context.Context, doc *GRN) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.GRNNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesGRN)
		if err != nil {
			return fmt.Errorf("generate grn number: %w", err)
		}
		doc.GRNNo = number
	}
	if doc.Status == "" {
		doc.Status = StatusPendingQC
	}
	if doc.ReceivedBy == "" {
		doc.ReceivedBy = corecontext.GetUserID(ctx)
	}
	if doc.ReceivedAt.IsZero() {
		doc.ReceivedAt = time.Now().UTC()
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return fmt.Errorf("create grn: %w", err)
	}

	logger.Info(ctx, "grn created", "id", doc.ID, "grn_no", doc.GRNNo, "po_no", doc.PONo)
	return nil
}

// GetByID retrieves a GRN.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*GRN, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves GRNs with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*GRN, error) {
	return s.repo.List(ctx, filter)
}

// SetStatus updates the GRN status. Quality check processing is the only
// caller; it runs inside the quality check's transaction.
func (s *Service) SetStatus(ctx context.Context, docID id.ID, status string) error {
	return s.repo.UpdateStatus(ctx, docID, status)
}
