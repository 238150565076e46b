package document_repo

import (
	"loomstock/internal/domain/documents/qualitycheck"
	"loomstock/internal/infrastructure/storage/postgres"
)

const qualityCheckTable = "doc_quality_checks"

// QualityCheckRepo implements qualitycheck.Repository.
type QualityCheckRepo struct {
	*BaseDocRepo[*qualitycheck.QualityCheck]
}

// NewQualityCheckRepo creates a new quality check repository.
func NewQualityCheckRepo(txm *postgres.TxManager) *QualityCheckRepo {
	return &QualityCheckRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			qualityCheckTable,
			"quality check",
			postgres.ExtractDBColumns[qualitycheck.QualityCheck](),
			"inspected_at",
			func() *qualitycheck.QualityCheck { return &qualitycheck.QualityCheck{} },
		),
	}
}
