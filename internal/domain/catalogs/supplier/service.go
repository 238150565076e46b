package supplier

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository extends the generic catalog repository with code lookups.
type Repository interface {
	domain.CatalogRepository[*Supplier]
	ExistsByCode(ctx context.Context, supplierCode string) (bool, error)
}

// Service provides business logic for the Supplier master.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo Repository
}

// NewService creates a new supplier service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "supplier",
	})

	svc := &Service{CatalogService: base, repo: repo}
	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, sup *Supplier) error {
	sup.EnsureDefaults()
	if sup.Status == "" {
		sup.Status = "Active"
	}

	exists, err := s.repo.ExistsByCode(ctx, sup.SupplierCode)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("supplier", "supplier_code", sup.SupplierCode)
	}
	return nil
}
