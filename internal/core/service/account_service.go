package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-erp/identity-service/internal/core/domain"
	"github.com/smart-erp/identity-service/internal/core/ports"
	"github.com/smart-erp/identity-service/internal/core/token"
)

// dummyHash is a bcrypt digest of a random throwaway string. Login compares
// against it when the username does not resolve, so the unknown-user and
// wrong-password paths cost the same and cannot be told apart by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountService implements ports.AccountService on top of the credential
// store, the password hasher and the token issuer.
type AccountService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	cache  ports.UserCache
	issuer *token.Issuer
	log    zerolog.Logger
}

func NewAccountService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	cache ports.UserCache,
	issuer *token.Issuer,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{users: users, roles: roles, cache: cache, issuer: issuer, log: log}
}

// Register creates a new active account with a freshly hashed password.
// No token is issued here; login is a separate step.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	// a taken username reports the conflict even when the role name is also
	// bad; the unique index still resolves concurrent racers at insert time
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role, err := s.roles.FindByName(ctx, input.RoleName)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrUnknownRole
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		Phone:        input.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLogin:    now,
		RoleID:       role.ID,
		Role:         role,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", role.Name).Msg("user registered")
	return created, nil
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords both fail with domain.ErrInvalidCredentials; an
// inactive account fails with domain.ErrAccountInactive after verification.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", domain.ErrAccountInactive
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx, user.ID)

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.RoleName()).Msg("login succeeded")
	return signed, nil
}

// GetUser returns the user with its role resolved, consulting the cache
// first.
func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, user)
	return user, nil
}

// ListUsers returns all users with roles resolved. Access control for this
// operation lives in the RBAC middleware, not here.
func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes the account. Deletion is physical.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// AssignRole points the user at a different role. Both the user and the role
// must exist.
func (s *AccountService) AssignRole(ctx context.Context, userID, roleID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, userID, role.ID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, userID)

	s.log.Info().Str("user_id", userID).Str("role", role.Name).Msg("role assigned")
	return nil
}

// GetUserRole returns the single role currently assigned to the user.
func (s *AccountService) GetUserRole(ctx context.Context, userID string) (*domain.Role, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Role, nil
}
