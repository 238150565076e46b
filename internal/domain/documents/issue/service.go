package issue

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

// Repository defines issue persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *Issue) error
	GetByID(ctx context.Context, docID id.ID) (*Issue, error)
	List(ctx context.Context) ([]*Issue, error)
	// ListBetween returns issues in [from, to) for the issue register report.
	ListBetween(ctx context.Context, from, to *time.Time) ([]*Issue, error)
}

// Ledger is the slice of the ledger service issues need.
type Ledger interface {
	Issue(ctx context.Context, key ledger.Key, qty types.Quantity) (types.Quantity, error)
}

// Service provides business operations for issue documents.
type Service struct {
	repo      Repository
	ledger    Ledger
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new issue service.
func NewService(repo Repository, ldg Ledger, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, ledger: ldg, numerator: gen, txManager: txManager}
}

// Create atomically decrements the stock balance and persists the issue.
// Insufficient stock fails the whole operation; neither the document nor the
// balance change survives.
func (s *Service) Create(ctx context.Context, doc *Issue) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.IssueNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesIssue)
		if err != nil {
			return fmt.Errorf("generate issue number: %w", err)
		}
		doc.IssueNo = number
	}
	if doc.IssuedBy == "" {
		doc.IssuedBy = corecontext.GetUserID(ctx)
	}
	if doc.IssuedAt.IsZero() {
		doc.IssuedAt = time.Now().UTC()
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		key := ledger.Key{ItemID: doc.ItemID, WarehouseID: doc.WarehouseID}
		if _, err := s.ledger.Issue(ctx, key, doc.Qty); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create issue: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "stock issued to department",
		"id", doc.ID, "issue_no", doc.IssueNo, "department", doc.Department, "qty", doc.Qty.Float64())
	return nil
}

// GetByID retrieves an issue document.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Issue, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all issue documents.
func (s *Service) List(ctx context.Context) ([]*Issue, error) {
	return s.repo.List(ctx)
}

// ListBetween returns issues within an optional date range.
func (s *Service) ListBetween(ctx context.Context, from, to *time.Time) ([]*Issue, error) {
	return s.repo.ListBetween(ctx, from, to)
}
