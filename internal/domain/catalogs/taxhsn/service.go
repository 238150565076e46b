package taxhsn

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository extends the generic catalog repository with HSN lookups.
type Repository interface {
	domain.CatalogRepository[*TaxHSN]
	ExistsByCode(ctx context.Context, hsnCode string) (bool, error)
}

// Service provides business logic for the Tax/HSN master.
type Service struct {
	*domain.CatalogService[*TaxHSN]
	repo Repository
}

// NewService creates a new tax/HSN service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*TaxHSN]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "tax hsn",
	})

	svc := &Service{CatalogService: base, repo: repo}
	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, t *TaxHSN) error {
	t.EnsureDefaults()
	if t.Status == "" {
		t.Status = "Active"
	}

	exists, err := s.repo.ExistsByCode(ctx, t.HSNCode)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("tax hsn", "hsn_code", t.HSNCode)
	}
	return nil
}
