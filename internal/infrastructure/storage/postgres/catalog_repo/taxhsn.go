package catalog_repo

import (
	"loomstock/internal/domain/catalogs/taxhsn"
	"loomstock/internal/infrastructure/storage/postgres"
)

const taxHSNTable = "cat_tax_hsn"

// TaxHSNRepo implements taxhsn.Repository.
type TaxHSNRepo struct {
	*BaseRepo[*taxhsn.TaxHSN]
}

// NewTaxHSNRepo creates a new tax/HSN repository.
func NewTaxHSNRepo(txm *postgres.TxManager) *TaxHSNRepo {
	return &TaxHSNRepo{
		BaseRepo: NewBaseRepo(
			txm,
			taxHSNTable,
			"tax/hsn",
			postgres.ExtractDBColumns[taxhsn.TaxHSN](),
			[]string{"hsn_code", "description"},
			"hsn_code",
			func() *taxhsn.TaxHSN { return &taxhsn.TaxHSN{} },
		),
	}
}
