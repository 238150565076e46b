package catalog_repo

import (
	"loomstock/internal/domain/catalogs/category"
	"loomstock/internal/infrastructure/storage/postgres"
)

const categoryTable = "cat_item_categories"

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	*BaseRepo[*category.Category]
}

// NewCategoryRepo creates a new item category repository.
func NewCategoryRepo(txm *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseRepo: NewBaseRepo(
			txm,
			categoryTable,
			"item category",
			postgres.ExtractDBColumns[category.Category](),
			[]string{"code", "name"},
			"code",
			func() *category.Category { return &category.Category{} },
		),
	}
}
