package catalog_repo

import (
	"loomstock/internal/domain/catalogs/binlocation"
	"loomstock/internal/infrastructure/storage/postgres"
)

const binLocationTable = "cat_bin_locations"

// BinLocationRepo implements binlocation.Repository.
type BinLocationRepo struct {
	*BaseRepo[*binlocation.BinLocation]
}

// NewBinLocationRepo creates a new BIN location repository.
func NewBinLocationRepo(txm *postgres.TxManager) *BinLocationRepo {
	return &BinLocationRepo{
		BaseRepo: NewBaseRepo(
			txm,
			binLocationTable,
			"bin location",
			postgres.ExtractDBColumns[binlocation.BinLocation](),
			[]string{"bin_code", "bin_name"},
			"bin_code",
			func() *binlocation.BinLocation { return &binlocation.BinLocation{} },
		),
	}
}
