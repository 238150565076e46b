package warehouse

import (
	"context"

	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository is the generic catalog repository for warehouses.
type Repository interface {
	domain.CatalogRepository[*Warehouse]
}

// Service provides business logic for the Warehouse master.
type Service struct {
	*domain.CatalogService[*Warehouse]
}

// NewService creates a new warehouse service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "warehouse",
	})

	svc := &Service{CatalogService: base}
	base.Hooks().On(domain.BeforeCreate, func(_ context.Context, w *Warehouse) error {
		w.EnsureDefaults()
		if w.Status == "" {
			w.Status = "Active"
		}
		return nil
	})
	return svc
}
