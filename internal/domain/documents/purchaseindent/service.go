package purchaseindent

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

// Repository defines purchase indent persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *Indent) error
	GetByID(ctx context.Context, docID id.ID) (*Indent, error)
	List(ctx context.Context) ([]*Indent, error)
	UpdateApproval(ctx context.Context, docID id.ID, fields approval.Fields) error
}

// Service provides business operations for purchase indent documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new purchase indent service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, numerator: gen, txManager: txManager}
}

// Create persists a new indent in Draft status.
func (s *Service) Create(ctx context.Context, doc *Indent) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.IndentNo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesPurchaseIndent)
		if err != nil {
			return fmt.Errorf("generate indent number: %w", err)
		}
		doc.IndentNo = number
	}
	if doc.Status == "" {
		doc.Status = approval.InitialStatus(approval.DocTypePurchaseIndent)
	}
	if doc.RequestedBy == "" {
		doc.RequestedBy = corecontext.GetUserID(ctx)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return fmt.Errorf("create indent: %w", err)
	}

	logger.Info(ctx, "purchase indent created",
		"id", doc.ID, "indent_no", doc.IndentNo, "department", doc.Department)
	return nil
}

// Approve moves a pending indent to Approved.
func (s *Service) Approve(ctx context.Context, docID id.ID) error {
	return s.decide(ctx, docID, true)
}

// Reject moves a pending indent to Rejected.
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
		err = doc.Approve(approval.DocTypePurchaseIndent, approver, now)
	} else {
		err = doc.Reject(approval.DocTypePurchaseIndent, approver, now)
	}
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateApproval(ctx, docID, doc.Fields)
	})
	if err != nil {
		return fmt.Errorf("update indent approval: %w", err)
	}
	return nil
}

// GetByID retrieves an indent.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Indent, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves all indents.
func (s *Service) List(ctx context.Context) ([]*Indent, error) {
	return s.repo.List(ctx)
}
