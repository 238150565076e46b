package catalog_repo

import (
	"loomstock/internal/domain/catalogs/item"
	"loomstock/internal/infrastructure/storage/postgres"
)

const itemTable = "cat_items"

// ItemRepo implements item.Repository.
type ItemRepo struct {
	*BaseRepo[*item.Item]
}

// NewItemRepo creates a new item repository.
func NewItemRepo(txm *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		BaseRepo: NewBaseRepo(
			txm,
			itemTable,
			"item",
			postgres.ExtractDBColumns[item.Item](),
			[]string{"item_code", "item_name", "barcode"},
			"item_code",
			func() *item.Item { return &item.Item{} },
		),
	}
}
