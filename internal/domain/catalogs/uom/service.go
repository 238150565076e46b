package uom

import (
	"context"

	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository is the generic catalog repository for UOMs.
type Repository interface {
	domain.CatalogRepository[*UOM]
}

// Service provides business logic for the UOM master.
type Service struct {
	*domain.CatalogService[*UOM]
}

// NewService creates a new UOM service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*UOM]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "uom",
	})

	svc := &Service{CatalogService: base}
	base.Hooks().On(domain.BeforeCreate, func(_ context.Context, u *UOM) error {
		u.EnsureDefaults()
		if u.Status == "" {
			u.Status = "Active"
		}
		if u.DecimalPrecision == 0 {
			u.DecimalPrecision = 2
		}
		return nil
	})
	return svc
}
