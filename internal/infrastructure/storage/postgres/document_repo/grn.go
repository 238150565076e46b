package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"loomstock/internal/core/id"
	"loomstock/internal/domain/documents/grn"
	"loomstock/internal/infrastructure/storage/postgres"
)

const grnTable = "doc_grns"

// GRNRepo implements grn.Repository.
type GRNRepo struct {
	*BaseDocRepo[*grn.GRN]
}

// NewGRNRepo creates a new GRN repository.
func NewGRNRepo(txm *postgres.TxManager) *GRNRepo {
	return &GRNRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			grnTable,
			"grn",
			postgres.ExtractDBColumns[grn.GRN](),
			"received_at",
			func() *grn.GRN { return &grn.GRN{} },
		),
	}
}

// List retrieves GRNs, optionally narrowed by purchase order or status.
func (r *GRNRepo) List(ctx context.Context, filter grn.ListFilter) ([]*grn.GRN, error) {
	q := r.BaseSelect()
	if filter.POID != "" {
		q = q.Where(squirrel.Eq{"po_id": filter.POID})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	return r.Select(ctx, q)
}

// UpdateStatus changes only the status column.
func (r *GRNRepo) UpdateStatus(ctx context.Context, docID id.ID, status string) error {
	q := r.Builder().
		Update(grnTable).
		Set("status", status).
		Where(squirrel.Eq{"id": docID})

	return r.execUpdate(ctx, q, docID)
}
