package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"loomstock/internal/core/id"
	"loomstock/internal/domain/approval"
	"loomstock/internal/domain/documents/purchaseorder"
	"loomstock/internal/infrastructure/storage/postgres"
)

const purchaseOrderTable = "doc_purchase_orders"

// PurchaseOrderRepo implements purchaseorder.Repository.
type PurchaseOrderRepo struct {
	*BaseDocRepo[*purchaseorder.PurchaseOrder]
}

// NewPurchaseOrderRepo creates a new purchase order repository.
func NewPurchaseOrderRepo(txm *postgres.TxManager) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			purchaseOrderTable,
			"purchase order",
			postgres.ExtractDBColumns[purchaseorder.PurchaseOrder](),
			"created_at",
			func() *purchaseorder.PurchaseOrder { return &purchaseorder.PurchaseOrder{} },
		),
	}
}

// List retrieves purchase orders, optionally narrowed by approval status
// or supplier.
func (r *PurchaseOrderRepo) List(ctx context.Context, filter purchaseorder.ListFilter) ([]*purchaseorder.PurchaseOrder, error) {
	q := r.BaseSelect()
	if len(filter.Statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": filter.Statuses})
	}
	if filter.SupplierID != "" {
		q = q.Where(squirrel.Eq{"supplier_id": filter.SupplierID})
	}
	return r.Select(ctx, q)
}

// UpdateApproval writes the approval columns, optionally replacing the
// remarks with the decision note.
func (r *PurchaseOrderRepo) UpdateApproval(ctx context.Context, docID id.ID, fields approval.Fields, remarks *string) error {
	q := r.Builder().
		Update(purchaseOrderTable).
		Set("status", fields.Status).
		Set("approved_by", fields.ApprovedBy).
		Set("approved_at", fields.ApprovedAt).
		Where(squirrel.Eq{"id": docID})

	if remarks != nil {
		q = q.Set("remarks", *remarks)
	}
	return r.execUpdate(ctx, q, docID)
}

// CountByStatus counts purchase orders in one approval status.
func (r *PurchaseOrderRepo) CountByStatus(ctx context.Context, status approval.Status) (int64, error) {
	q := r.Builder().
		Select("COUNT(*)").
		From(purchaseOrderTable).
		Where(squirrel.Eq{"status": status})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int64
	if err := r.TxManager().GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count by status: %w", err)
	}
	return count, nil
}
