package document_repo

import (
	"loomstock/internal/domain/documents/purchaseindent"
	"loomstock/internal/infrastructure/storage/postgres"
)

const purchaseIndentTable = "doc_purchase_indents"

// PurchaseIndentRepo implements purchaseindent.Repository.
type PurchaseIndentRepo struct {
	*BaseDocRepo[*purchaseindent.Indent]
}

// NewPurchaseIndentRepo creates a new purchase indent repository.
func NewPurchaseIndentRepo(txm *postgres.TxManager) *PurchaseIndentRepo {
	return &PurchaseIndentRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			purchaseIndentTable,
			"purchase indent",
			postgres.ExtractDBColumns[purchaseindent.Indent](),
			"created_at",
			func() *purchaseindent.Indent { return &purchaseindent.Indent{} },
		),
	}
}
