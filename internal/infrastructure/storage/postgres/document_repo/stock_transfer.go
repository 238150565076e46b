package document_repo

import (
	"loomstock/internal/domain/documents/stocktransfer"
	"loomstock/internal/infrastructure/storage/postgres"
)

const stockTransferTable = "doc_stock_transfers"

// StockTransferRepo implements stocktransfer.Repository.
type StockTransferRepo struct {
	*BaseDocRepo[*stocktransfer.StockTransfer]
}

// NewStockTransferRepo creates a new stock transfer repository.
func NewStockTransferRepo(txm *postgres.TxManager) *StockTransferRepo {
	return &StockTransferRepo{
		BaseDocRepo: NewBaseDocRepo(
			txm,
			stockTransferTable,
			"stock transfer",
			postgres.ExtractDBColumns[stocktransfer.StockTransfer](),
			"created_at",
			func() *stocktransfer.StockTransfer { return &stocktransfer.StockTransfer{} },
		),
	}
}
