package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/smart-erp/identity-service/internal/core/domain"
	"github.com/smart-erp/identity-service/internal/core/ports"
)

// RoleService implements ports.RoleService.
type RoleService struct {
	roles ports.RoleRepository
	users ports.UserRepository
	cache ports.UserCache
	log   zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, users ports.UserRepository, cache ports.UserCache, log zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, users: users, cache: cache, log: log}
}

// CreateRole persists a new role with a unique name.
func (s *RoleService) CreateRole(ctx context.Context, name, description string) (*domain.Role, error) {
	if name == "" {
		return nil, domain.ErrRoleNameRequired
	}

	created, err := s.roles.Create(ctx, &domain.Role{Name: name, Description: description})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("role", created.Name).Msg("role created")
	return created, nil
}

// UpdateRole overwrites name and description unconditionally. A rename drops
// cached users holding the role, since cached reads embed the role name.
func (s *RoleService) UpdateRole(ctx context.Context, id, name, description string) error {
	existing, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}

	renamed := existing.Name != name
	existing.Name = name
	existing.Description = description
	if err := s.roles.Update(ctx, existing); err != nil {
		return err
	}

	if renamed {
		ids, err := s.users.IDsByRole(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("role_id", id).Msg("could not list users for cache invalidation")
			return nil
		}
		for _, uid := range ids {
			s.cache.Invalidate(ctx, uid)
		}
	}
	return nil
}

// DeleteRole removes a role. Deletion is blocked while users still reference
// the role, so the store never holds a dangling role reference.
func (s *RoleService) DeleteRole(ctx context.Context, id string) error {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.users.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrRoleInUse
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("role_id", id).Msg("role deleted")
	return nil
}

// GetRole returns a role by id.
func (s *RoleService) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

// ListRoles returns all roles.
func (s *RoleService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

// EnsureDefaultRoles seeds the built-in Admin and User roles when the role
// collection is empty.
func (s *RoleService) EnsureDefaultRoles(ctx context.Context) error {
	existing, err := s.roles.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		if _, err := s.roles.Create(ctx, &domain.Role{Name: name}); err != nil {
			// another instance may have seeded concurrently
			if errors.Is(err, domain.ErrRoleExists) {
				continue
			}
			return err
		}
		s.log.Info().Str("role", name).Msg("default role seeded")
	}
	return nil
}
