package document_repo

import (
	"loomstock/internal/domain/documents/adjustment"
	"loomstock/internal/infrastructure/storage/postgres"
)

const adjustmentTable = "doc_adjustments"

// AdjustmentRepo implements adjustment.Repository.
type AdjustmentRepo struct {
	*BaseDocRepo[*adjustment.Adjustment]
}

// NewAdjustmentRepo creates a new stock adjustment repository.
func NewAdjustmentRepo(txm *postgres.TxManager) *AdjustmentRepo {
	return &AdjustmentRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			adjustmentTable,
			"stock adjustment",
			postgres.ExtractDBColumns[adjustment.Adjustment](),
			"created_at",
			func() *adjustment.Adjustment { return &adjustment.Adjustment{} },
		),
	}
}
