package repository

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// ContactRepository describes persistence operations for contact messages.
// Messages are not financial records, so Delete removes the row.
type ContactRepository interface {
	Create(ctx context.Context, name, email, subject, message string) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
