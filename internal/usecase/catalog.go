package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
)

// CatalogUseCase manages the board, stream and subject taxonomy. Children can
// only be created under an active parent.
type CatalogUseCase struct {
	boards   repository.BoardRepository
	streams  repository.StreamRepository
	subjects repository.SubjectRepository
}

// NewCatalogUseCase creates catalog use case.
func NewCatalogUseCase(
	boards repository.BoardRepository,
	streams repository.StreamRepository,
	subjects repository.SubjectRepository,
) *CatalogUseCase {
	return &CatalogUseCase{boards: boards, streams: streams, subjects: subjects}
}

func (uc *CatalogUseCase) CreateBoard(ctx context.Context, name, description string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}
	return uc.boards.Create(ctx, name, strings.TrimSpace(description))
}

func (uc *CatalogUseCase) UpdateBoard(ctx context.Context, id int64, name, description string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}
	board, err := uc.boards.Update(ctx, id, name, strings.TrimSpace(description))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("board not found")
		}
		return nil, err
	}
	return board, nil
}

func (uc *CatalogUseCase) DeactivateBoard(ctx context.Context, id int64) error {
	if err := uc.boards.Deactivate(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("board not found")
		}
		return err
	}
	return nil
}

func (uc *CatalogUseCase) GetBoard(ctx context.Context, id int64) (*model.Board, error) {
	board, err := uc.boards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("board not found")
		}
		return nil, err
	}
	if !board.IsActive {
		return nil, domainErrors.NotFound("board not found")
	}
	return board, nil
}

func (uc *CatalogUseCase) ListBoards(ctx context.Context) ([]model.Board, error) {
	return uc.boards.List(ctx)
}

func (uc *CatalogUseCase) CreateStream(ctx context.Context, boardID int64, name string) (*model.Stream, error) {
	name = strings.TrimSpace(name)
	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}

	board, err := uc.boards.GetByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("board not found")
		}
		return nil, err
	}
	if !board.IsActive {
		return nil, domainErrors.NotFound("board not found")
	}

	return uc.streams.Create(ctx, boardID, name)
}

func (uc *CatalogUseCase) UpdateStream(ctx context.Context, id int64, name string) (*model.Stream, error) {
	name = strings.TrimSpace(name)
	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}
	stream, err := uc.streams.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("stream not found")
		}
		return nil, err
	}
	return stream, nil
}

func (uc *CatalogUseCase) DeactivateStream(ctx context.Context, id int64) error {
	if err := uc.streams.Deactivate(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("stream not found")
		}
		return err
	}
	return nil
}

func (uc *CatalogUseCase) GetStream(ctx context.Context, id int64) (*model.Stream, error) {
	stream, err := uc.streams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("stream not found")
		}
		return nil, err
	}
	if !stream.IsActive {
		return nil, domainErrors.NotFound("stream not found")
	}
	return stream, nil
}

func (uc *CatalogUseCase) ListStreams(ctx context.Context, boardID int64) ([]model.Stream, error) {
	return uc.streams.List(ctx, boardID)
}

func (uc *CatalogUseCase) CreateSubject(ctx context.Context, streamID int64, name string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}

	stream, err := uc.streams.GetByID(ctx, streamID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("stream not found")
		}
		return nil, err
	}
	if !stream.IsActive {
		return nil, domainErrors.NotFound("stream not found")
	}

	return uc.subjects.Create(ctx, streamID, name)
}

func (uc *CatalogUseCase) UpdateSubject(ctx context.Context, id int64, name string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}
	subject, err := uc.subjects.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("subject not found")
		}
		return nil, err
	}
	return subject, nil
}

func (uc *CatalogUseCase) DeactivateSubject(ctx context.Context, id int64) error {
	if err := uc.subjects.Deactivate(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("subject not found")
		}
		return err
	}
	return nil
}

func (uc *CatalogUseCase) GetSubject(ctx context.Context, id int64) (*model.Subject, error) {
	subject, err := uc.subjects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("subject not found")
		}
		return nil, err
	}
	if !subject.IsActive {
		return nil, domainErrors.NotFound("subject not found")
	}
	return subject, nil
}

func (uc *CatalogUseCase) ListSubjects(ctx context.Context, streamID int64) ([]model.Subject, error) {
	return uc.subjects.List(ctx, streamID)
}
