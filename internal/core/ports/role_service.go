package ports

import (
	"context"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

// RoleService orchestrates role CRUD.
type RoleService interface {
	CreateRole(ctx context.Context, name, description string) (*domain.Role, error)
	UpdateRole(ctx context.Context, id, name, description string) error
	DeleteRole(ctx context.Context, id string) error
	GetRole(ctx context.Context, id string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
}
