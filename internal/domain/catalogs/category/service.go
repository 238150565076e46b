package category

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/tx"
	"loomstock/internal/domain"
)

// Repository extends the generic catalog repository with code lookups.
type Repository interface {
	domain.CatalogRepository[*Category]
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// Service provides business logic for the Item Category master.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates a new category service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "item category",
	})

	svc := &Service{CatalogService: base, repo: repo}
	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, c *Category) error {
	c.EnsureDefaults()
	if c.Status == "" {
		c.Status = "Active"
	}

	exists, err := s.repo.ExistsByCode(ctx, c.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("item category", "code", c.Code)
	}
	return nil
}
