package ports

import (
	"context"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

// UserCache is a best-effort read cache in front of the user store. A miss or
// a cache error must never fail the request; callers fall through to the
// repository.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
	Invalidate(ctx context.Context, id string)
}
