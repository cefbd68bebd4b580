package repository

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// NoteRepository describes persistence operations for notes.
//
// GetByID and GetView do not filter on is_active: completed orders keep
// referencing deactivated notes, and paid downloads must keep working.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) (*model.Note, error)
	Update(ctx context.Context, note *model.Note) (*model.Note, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	GetView(ctx context.Context, id int64) (*model.NoteView, error)
	// ListActiveByIDs resolves the given ids to active notes only.
	ListActiveByIDs(ctx context.Context, ids []int64) ([]model.Note, error)
	// ListViews returns active notes matching the filter, newest first.
	ListViews(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error)
	CountActive(ctx context.Context) (int64, error)
}
