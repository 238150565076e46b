package v1

import (
	"context"

	"loomstock/internal/core/entity"
	"loomstock/internal/core/id"
	"loomstock/internal/domain"
	"loomstock/internal/infrastructure/storage/postgres"
)

// auditable is what the audit hooks need from a master entity.
type auditable interface {
	entity.Validatable
	GetID() id.ID
}

// registerAuditHooks records create, update and delete on a master into the
// audit log. Hooks run after the write committed, so a failed audit insert
// never rolls the change back.
func registerAuditHooks[T auditable](svc *domain.CatalogService[T], audit *postgres.AuditService, entityType string) {
	if audit == nil {
		return
	}

	hooks := svc.Hooks()
	hooks.On(domain.AfterCreate, func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, e.GetID(), postgres.AuditActionCreate, postgres.StructToMap(e))
	})
	hooks.On(domain.AfterUpdate, func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, e.GetID(), postgres.AuditActionUpdate, postgres.StructToMap(e))
	})
	hooks.On(domain.AfterDelete, func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, e.GetID(), postgres.AuditActionDelete, nil)
	})
}
