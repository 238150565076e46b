package purchaseorder

import (
	"context"
	"fmt"
	"time"

	"loomstock/internal/core/apperror"
	corecontext "loomstock/internal/core/context"
	"loomstock/internal/core/id"
	"loomstock/internal/core/tx"
	"loomstock/internal/domain/approval"
	"loomstock/pkg/logger"
	"loomstock/pkg/numerator"
)

// ListFilter restricts purchase order listings.
type ListFilter struct {
	// Statuses filters by approval status; empty means all.
	Statuses []approval.Status
	// SupplierID filters by supplier.
	SupplierID string
}

// Repository defines purchase order persistence operations.
type Repository interface {
	Create(ctx context.Context, doc *PurchaseOrder) error
	GetByID(ctx context.Context, docID id.ID) (*PurchaseOrder, error)
	List(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, error)
	UpdateApproval(ctx context.Context, docID id.ID, fields approval.Fields, remarks *string) error
	CountByStatus(ctx context.Context, status approval.Status) (int64, error)
}

// FlowMatcher answers whether a new order needs routed approval.
type FlowMatcher interface {
	RequiredApprovers(ctx context.Context, docType string, vars map[string]any) ([]approval.Approver, error)
}

// Service provides business operations for purchase order documents.
type Service struct {
	repo      Repository
	flows     FlowMatcher
	numerator numerator.Generator
	txManager tx.Manager
}

// NewService creates a new purchase order service. flows may be nil when
// no approval routing is configured.
func NewService(repo Repository, flows FlowMatcher, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{repo: repo, flows: flows, numerator: gen, txManager: txManager}
}

// Create persists a new purchase order. Totals are derived from the lines
// when absent. Orders matching an active approval flow start Pending;
// everything else starts Draft.
func (s *Service) Create(ctx context.Context, doc *PurchaseOrder) error {
	doc.ComputeTotals()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if doc.PONo == "" {
		number, err := s.numerator.Next(ctx, numerator.SeriesPurchaseOrder)
		if err != nil {
			return fmt.Errorf("generate po number: %w", err)
		}
		doc.PONo = number
	}
	if doc.CreatedBy == "" {
		doc.CreatedBy = corecontext.GetUserID(ctx)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if doc.Status == "" {
		doc.Status = s.initialStatus(ctx, doc)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}

	logger.Info(ctx, "purchase order created",
		"id", doc.ID, "po_no", doc.PONo, "supplier_id", doc.SupplierID,
		"total_amount", doc.TotalAmount, "status", doc.Status)
	return nil
}

func (s *Service) initialStatus(ctx context.Context, doc *PurchaseOrder) approval.Status {
	status := approval.InitialStatus(approval.DocTypePurchaseOrder)
	if s.flows == nil {
		return status
	}

	total, _ := doc.TotalAmount.Float64()
	approvers, err := s.flows.RequiredApprovers(ctx, approval.DocTypePurchaseOrder, map[string]any{
		"total_amount": total,
		"supplier_id":  doc.SupplierID,
	})
	if err != nil {
		logger.Warn(ctx, "approval flow lookup failed", "po_no", doc.PONo, "error", err)
		return status
	}
	if len(approvers) > 0 {
		return approval.StatusPending
	}
	return status
}

// Approve moves a pending order to Approved, recording the approver.
func (s *Service) Approve(ctx context.Context, docID id.ID, remarks *string) error {
	return s.decide(ctx, docID, true, remarks)
}

// Reject moves a pending order to Rejected.
func (s *Service) Reject(ctx context.Context, docID id.ID, remarks *string) error {
	return s.decide(ctx, docID, false, remarks)
}

func (s *Service) decide(ctx context.Context, docID id.ID, approve bool, remarks *string) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	approver := corecontext.GetUserID(ctx)
	now := time.Now()
	if approve {
		err = doc.Approve(approval.DocTypePurchaseOrder, approver, now)
	} else {
		err = doc.Reject(approval.DocTypePurchaseOrder, approver, now)
	}
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateApproval(ctx, docID, doc.Fields, remarks)
	})
	if err != nil {
		return fmt.Errorf("update po approval: %w", err)
	}

	logger.Info(ctx, "purchase order decided",
		"id", docID, "po_no", doc.PONo, "status", doc.Status, "approved_by", approver)
	return nil
}

// Submit moves a draft order to Pending so it can be approved.
func (s *Service) Submit(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc.Status != approval.StatusDraft {
		return apperror.NewInvalidTransition(approval.DocTypePurchaseOrder,
			string(doc.Status), string(approval.StatusPending))
	}
	doc.Status = approval.StatusPending

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateApproval(ctx, docID, doc.Fields, doc.Remarks)
	})
	if err != nil {
		return fmt.Errorf("submit po: %w", err)
	}
	return nil
}

// GetByID retrieves a purchase order.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves purchase orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, error) {
	return s.repo.List(ctx, filter)
}

// ListAwaitingAction returns orders in Pending or Draft for the pending-PO
// report.
func (s *Service) ListAwaitingAction(ctx context.Context) ([]*PurchaseOrder, error) {
	return s.repo.List(ctx, ListFilter{
		Statuses: []approval.Status{approval.StatusPending, approval.StatusDraft},
	})
}

// CountPending returns the number of orders awaiting approval.
func (s *Service) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, approval.StatusPending)
}
