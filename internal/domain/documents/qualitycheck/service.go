package qualitycheck

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

// Repository defines quality check persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *QualityCheck) error
	GetByID(ctx context.Context, docID id.ID) (*QualityCheck, error)
	List(ctx context.Context) ([]*QualityCheck, error)
}

// GRNUpdater is the slice of the GRN service quality checks need.
type GRNUpdater interface {
	SetStatus(ctx context.Context, grnID id.ID, status string) error
}

// Service provides business operations for quality check documents.
type Service struct {
	repo      Repository
	grns      GRNUpdater
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new quality check service.
func NewService(repo Repository, grns GRNUpdater, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, grns: grns, numerator: gen, txManager: txManager}
}

// Create persists a quality check and moves the GRN status in the same
// transaction: Accepted marks the GRN QC Passed, Rejected marks it QC
// Failed, Pending and Partial leave it untouched.
func (s *Service) Create(ctx context.Context, doc *QualityCheck) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.QCNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesQC)
		if err != nil {
			return fmt.Errorf("generate qc number: %w", err)
		}
		doc.QCNo = number
	}
	if doc.InspectedBy == "" {
		doc.InspectedBy = corecontext.GetUserID(ctx)
	}
	if doc.InspectedAt.IsZero() {
		doc.InspectedAt = time.Now().UTC()
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create quality check: %w", err)
		}
		if grnStatus := doc.GRNStatus(); grnStatus != "" {
			grnID, err := id.Parse(doc.GRNID)
			if err != nil {
				return fmt.Errorf("parse grn id: %w", err)
			}
			if err := s.grns.SetStatus(ctx, grnID, grnStatus); err != nil {
				return fmt.Errorf("update grn status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "quality check created",
		"id", doc.ID, "qc_no", doc.QCNo, "grn_no", doc.GRNNo, "qc_status", doc.QCStatus)
	return nil
}

// GetByID retrieves a quality check.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*QualityCheck, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all quality checks.
func (s *Service) List(ctx context.Context) ([]*QualityCheck, error) {
	return s.repo.List(ctx)
}
