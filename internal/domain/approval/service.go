package approval

import (
	"context"
	"fmt"

	"loomstock/internal/core/tx"
	"loomstock/pkg/logger"
)

// Service manages approval flow settings and answers routing questions for
// document services.
type Service struct {
	repo      FlowRepository
	txManager tx.Manager
}

// NewService creates an approval flow service.
func NewService(repo FlowRepository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// CreateFlow validates and stores an approval flow.
func (s *Service) CreateFlow(ctx context.Context, flow *Flow) error {
	flow.EnsureDefaults()
	if flow.Status == "" {
		flow.Status = "Active"
	}
	if err := flow.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, flow)
	})
	if err != nil {
		return fmt.Errorf("create approval flow: %w", err)
	}

	logger.Info(ctx, "approval flow created",
		"flow_name", flow.FlowName,
		"document_type", flow.DocumentType)
	return nil
}

// ListFlows returns all configured flows.
func (s *Service) ListFlows(ctx context.Context) ([]*Flow, error) {
	return s.repo.List(ctx)
}

// RequiredApprovers returns the approver chain for a document, or nil when
// no active flow matches and the document needs no routed approval.
func (s *Service) RequiredApprovers(ctx context.Context, docType string, vars map[string]any) ([]Approver, error) {
	flows, err := s.repo.ListByDocumentType(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("load flows for %s: %w", docType, err)
	}

	for _, flow := range flows {
		if flow.Status != "Active" {
			continue
		}
		matched, err := flow.Matches(vars)
		if err != nil {
			// A broken condition must not block document processing.
			logger.Warn(ctx, "approval flow condition failed",
				"flow_name", flow.FlowName, "error", err)
			continue
		}
		if matched {
			return flow.Approvers, nil
		}
	}
	return nil, nil
}
