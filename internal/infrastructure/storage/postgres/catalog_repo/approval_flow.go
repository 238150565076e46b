package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"loomstock/internal/domain/approval"
	"loomstock/internal/infrastructure/storage/postgres"
)

const approvalFlowTable = "cat_approval_flows"

// ApprovalFlowRepo implements approval.FlowRepository. Approvers are stored
// as a JSONB column.
type ApprovalFlowRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewApprovalFlowRepo creates a new approval flow repository.
func NewApprovalFlowRepo(txm *postgres.TxManager) *ApprovalFlowRepo {
	return &ApprovalFlowRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[approval.Flow](),
	}
}

func (r *ApprovalFlowRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new flow.
func (r *ApprovalFlowRepo) Create(ctx context.Context, flow *approval.Flow) error {
	data := postgres.StructToMap(flow)

	q := r.builder().
		Insert(approvalFlowTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert approval flow: %w", err)
	}
	return nil
}

// ListByDocumentType returns active flows for one document type.
func (r *ApprovalFlowRepo) ListByDocumentType(ctx context.Context, docType string) ([]*approval.Flow, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"document_type": docType, "status": "Active"})
	return r.selectFlows(ctx, q)
}

// List returns all flows.
func (r *ApprovalFlowRepo) List(ctx context.Context) ([]*approval.Flow, error) {
	return r.selectFlows(ctx, r.baseSelect())
}

func (r *ApprovalFlowRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(approvalFlowTable).
		OrderBy("created_at DESC")
}

func (r *ApprovalFlowRepo) selectFlows(ctx context.Context, q squirrel.SelectBuilder) ([]*approval.Flow, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var flows []*approval.Flow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &flows, sql, args...); err != nil {
		return nil, fmt.Errorf("list approval flows: %w", err)
	}
	return flows, nil
}
