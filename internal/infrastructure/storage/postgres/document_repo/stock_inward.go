package document_repo

import (
	"loomstock/internal/domain/documents/stockinward"
	"loomstock/internal/infrastructure/storage/postgres"
)

const stockInwardTable = "doc_stock_inwards"

// StockInwardRepo implements stockinward.Repository.
type StockInwardRepo struct {
	*BaseDocRepo[*stockinward.StockInward]
}

// NewStockInwardRepo creates a new stock inward repository.
func NewStockInwardRepo(txm *postgres.TxManager) *StockInwardRepo {
	return &StockInwardRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			stockInwardTable,
			"stock inward",
			postgres.ExtractDBColumns[stockinward.StockInward](),
			"created_at",
			func() *stockinward.StockInward { return &stockinward.StockInward{} },
		),
	}
}
