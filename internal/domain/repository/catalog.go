package repository

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// BoardRepository describes persistence operations for exam boards.
// Deactivate performs a soft delete; listings return active rows only.
type BoardRepository interface {
	Create(ctx context.Context, name, description string) (*model.Board, error)
	Update(ctx context.Context, id int64, name, description string) (*model.Board, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Board, error)
	List(ctx context.Context) ([]model.Board, error)
}

// StreamRepository describes persistence operations for streams.
type StreamRepository interface {
	Create(ctx context.Context, boardID int64, name string) (*model.Stream, error)
	Update(ctx context.Context, id int64, name string) (*model.Stream, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Stream, error)
	// List returns active streams, scoped to a board when boardID is non-zero.
	List(ctx context.Context, boardID int64) ([]model.Stream, error)
}

// SubjectRepository describes persistence operations for subjects.
type SubjectRepository interface {
	Create(ctx context.Context, streamID int64, name string) (*model.Subject, error)
	Update(ctx context.Context, id int64, name string) (*model.Subject, error)
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Subject, error)
	// List returns active subjects, scoped to a stream when streamID is non-zero.
	List(ctx context.Context, streamID int64) ([]model.Subject, error)
}
