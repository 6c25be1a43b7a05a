package ports

import (
	"context"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

// UserRepository is the persistence boundary for user records. The store owns
// the username uniqueness guarantee: concurrent Create calls racing on the
// same username must resolve so that at most one succeeds, the loser
// observing domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id, roleID string) error
	CountByRole(ctx context.Context, roleID string) (int64, error)
	IDsByRole(ctx context.Context, roleID string) ([]string, error)
}
