package binlocation

import (
	"context"

	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository is the generic catalog repository for bin locations.
type Repository interface {
	domain.CatalogRepository[*BinLocation]
}

// Service provides business logic for the BIN Location master.
type Service struct {
	*domain.CatalogService[*BinLocation]
}

// NewService creates a new bin location service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*BinLocation]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "bin location",
	})

	svc := &Service{CatalogService: base}
	base.Hooks().On(domain.BeforeCreate, func(_ context.Context, b *BinLocation) error {
		b.EnsureDefaults()
		if b.Status == "" {
			b.Status = "Active"
		}
		return nil
	})
	return svc
}
