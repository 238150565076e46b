package catalog_repo

import (
	"loomstock/internal/domain/catalogs/supplier"
	"loomstock/internal/infrastructure/storage/postgres"
)

const supplierTable = "cat_suppliers"

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseRepo: NewBaseRepo(
			txm,
			supplierTable,
			"supplier",
			postgres.ExtractDBColumns[supplier.Supplier](),
			[]string{"supplier_code", "name", "gst"},
			"supplier_code",
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}
