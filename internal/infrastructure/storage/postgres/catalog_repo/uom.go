package catalog_repo

import (
	"loomstock/internal/domain/catalogs/uom"
	"loomstock/internal/infrastructure/storage/postgres"
)

const uomTable = "cat_uoms"

// UOMRepo implements uom.Repository.
type UOMRepo struct {
	*BaseRepo[*uom.UOM]
}

// NewUOMRepo creates a new UOM repository.
func NewUOMRepo(txm *postgres.TxManager) *UOMRepo {
	return &UOMRepo{
		BaseRepo: NewBaseRepo(
			txm,
			uomTable,
			"uom",
			postgres.ExtractDBColumns[uom.UOM](),
			[]string{"uom_name"},
			"uom_name",
			func() *uom.UOM { return &uom.UOM{} },
		),
	}
}
