package domain

import "errors"

// Sentinel errors returned by the services. The API layer maps each one to a
// deterministic HTTP status; see internal/api/error_handler.go.
var (
	// Validation (400)
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUnknownRole        = errors.New("invalid role")
	ErrRoleNameRequired   = errors.New("role name is required")

	// Conflict (409)
	ErrUserExists = errors.New("username already exists")
	ErrRoleExists = errors.New("role already exists")
	ErrRoleInUse  = errors.New("role is still assigned to users")

	// Authentication (401). Covers both unknown username and wrong password;
	// callers must not be able to tell which branch failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization (403)
	ErrAccountInactive = errors.New("account is deactivated")

	// Not found (404)
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)
