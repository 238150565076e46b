package document_repo

import (
	"loomstock/internal/domain/documents/deptreturn"
	"loomstock/internal/infrastructure/storage/postgres"
)

const returnTable = "doc_returns"

// ReturnRepo implements deptreturn.Repository.
type ReturnRepo struct {
	*BaseDocRepo[*deptreturn.Return]
}

// NewReturnRepo creates a new department return repository.
func NewReturnRepo(txm *postgres.TxManager) *ReturnRepo {
	return &ReturnRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			returnTable,
			"return",
			postgres.ExtractDBColumns[deptreturn.Return](),
			"returned_at",
			func() *deptreturn.Return { return &deptreturn.Return{} },
		),
	}
}
