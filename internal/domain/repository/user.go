package repository

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	SetRole(ctx context.Context, id int64, role model.Role) error
	Count(ctx context.Context) (int64, error)
}
