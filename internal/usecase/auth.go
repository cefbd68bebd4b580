package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
	"github.com/notemart/notemart/internal/pkg/auth"
)

// AuthUseCase registers users and authenticates credentials into tokens.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   auth.PasswordHasher
	strategy auth.Strategy
	logger   *slog.Logger
}

// NewAuthUseCase creates authentication use case.
func NewAuthUseCase(
	users repository.UserRepository,
	hasher auth.PasswordHasher,
	strategy auth.Strategy,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, strategy: strategy, logger: logger}
}

// Register creates a user account and returns it with a fresh token.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateRequired(name, "name"); err != nil {
		return nil, "", err
	}
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user, err := uc.users.Create(ctx, name, email, hash, model.RoleUser)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.strategy.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	uc.logger.Info("user registered", slog.Int64("user_id", user.ID))
	return user, token, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.Validation("email and password are required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := uc.strategy.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ParseToken resolves a bearer token into user identity and role.
func (uc *AuthUseCase) ParseToken(token string) (int64, model.Role, error) {
	return uc.strategy.ParseToken(token)
}

// GetByID loads a user profile.
func (uc *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return uc.users.GetByID(ctx, id)
}

// SeedAdmin ensures the configured administrator account exists. An existing
// account with the given email is promoted rather than recreated.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err == nil {
		if user.Role == model.RoleAdmin {
			return nil
		}
		return uc.users.SetRole(ctx, user.ID, model.RoleAdmin)
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}

	created, err := uc.users.Create(ctx, "Administrator", email, hash, model.RoleAdmin)
	if err != nil {
		return err
	}

	uc.logger.Info("admin account seeded", slog.Int64("user_id", created.ID))
	return nil
}
