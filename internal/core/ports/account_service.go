package ports

import (
	"context"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

// AccountService orchestrates registration, credential verification and
// account administration.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	AssignRole(ctx context.Context, userID, roleID string) error
	GetUserRole(ctx context.Context, userID string) (*domain.Role, error)
}

// RegisterInput carries the fields accepted by Register. RoleName must
// resolve to an existing role.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	RoleName string
}
