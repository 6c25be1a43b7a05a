package ports

import (
	"context"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

// RoleRepository is the persistence boundary for role records. Role names are
// unique; Create returns domain.ErrRoleExists on a duplicate.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id string) error
}
