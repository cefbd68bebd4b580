package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
)

// NoteUseCase manages notes and gates paid downloads. A note stays
// downloadable for its buyers even after it is deactivated.
type NoteUseCase struct {
	notes    repository.NoteRepository
	subjects repository.SubjectRepository
	orders   repository.OrderRepository
}

// NewNoteUseCase creates note use case.
func NewNoteUseCase(
	notes repository.NoteRepository,
	subjects repository.SubjectRepository,
	orders repository.OrderRepository,
) *NoteUseCase {
	return &NoteUseCase{notes: notes, subjects: subjects, orders: orders}
}

func (uc *NoteUseCase) validate(ctx context.Context, note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	note.Description = strings.TrimSpace(note.Description)

	if err := validateRequired(note.Title, "title"); err != nil {
		return err
	}
	if note.Price < 0 {
		return domainErrors.Validation("price must not be negative")
	}
	if note.Pages < 1 {
		return domainErrors.Validation("pages must be at least 1")
	}

	subject, err := uc.subjects.GetByID(ctx, note.SubjectID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("subject not found")
		}
		return err
	}
	if !subject.IsActive {
		return domainErrors.NotFound("subject not found")
	}
	return nil
}

// Create validates and stores a new note.
func (uc *NoteUseCase) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	if err := uc.validate(ctx, note); err != nil {
		return nil, err
	}
	return uc.notes.Create(ctx, note)
}

// Update validates and stores changed note fields.
func (uc *NoteUseCase) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	if err := uc.validate(ctx, note); err != nil {
		return nil, err
	}
	updated, err := uc.notes.Update(ctx, note)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("note not found")
		}
		return nil, err
	}
	return updated, nil
}

// Deactivate soft-deletes a note. Existing purchases keep their access.
func (uc *NoteUseCase) Deactivate(ctx context.Context, id int64) error {
	if err := uc.notes.Deactivate(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("note not found")
		}
		return err
	}
	return nil
}

// Get returns a note with taxonomy context plus whether the caller already
// purchased it. Deactivated notes stay visible to admins and their buyers.
func (uc *NoteUseCase) Get(ctx context.Context, id, userID int64, role model.Role) (*model.NoteView, bool, error) {
	view, err := uc.notes.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, false, domainErrors.NotFound("note not found")
		}
		return nil, false, err
	}

	purchased := false
	if userID > 0 {
		purchased, err = uc.orders.HasCompletedWithNote(ctx, userID, id)
		if err != nil {
			return nil, false, err
		}
	}

	if !view.IsActive && role != model.RoleAdmin && !purchased {
		return nil, false, domainErrors.NotFound("note not found")
	}
	return view, purchased, nil
}

// List returns active notes matching the filter.
func (uc *NoteUseCase) List(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error) {
	return uc.notes.ListViews(ctx, filter)
}

// CanDownload resolves a note for download, enforcing the purchase gate.
// Admins bypass it.
func (uc *NoteUseCase) CanDownload(ctx context.Context, noteID, userID int64, role model.Role) (*model.Note, error) {
	note, err := uc.notes.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("note not found")
		}
		return nil, err
	}

	if role == model.RoleAdmin {
		return note, nil
	}

	purchased, err := uc.orders.HasCompletedWithNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, domainErrors.Forbidden("purchase required to download this note")
	}
	return note, nil
}
