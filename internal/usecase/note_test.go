package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	testhelpers "github.com/notemart/notemart/internal/test"
)

func validNote() *model.Note {
	return &model.Note{SubjectID: 1, Title: "Calculus", Description: "Limits", Price: 199, Pages: 42, FileName: "f.pdf", FileURL: "/uploads/notes/f.pdf"}
}

func TestCreateNoteValidation(t *testing.T) {
	uc := NewNoteUseCase(testhelpers.NoteRepoStub{}, testhelpers.SubjectRepoStub{}, testhelpers.OrderRepoStub{})

	cases := []struct {
		name   string
		mutate func(*model.Note)
	}{
		{"empty title", func(n *model.Note) { n.Title = " " }},
		{"negative price", func(n *model.Note) { n.Price = -1 }},
		{"zero pages", func(n *model.Note) { n.Pages = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			note := validNote()
			tc.mutate(note)
			if _, err := uc.Create(context.Background(), note); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateNoteFreePriceAllowed(t *testing.T) {
	uc := NewNoteUseCase(testhelpers.NoteRepoStub{}, testhelpers.SubjectRepoStub{}, testhelpers.OrderRepoStub{})

	note := validNote()
	note.Price = 0
	if _, err := uc.Create(context.Background(), note); err != nil {
		t.Fatalf("zero price must be allowed: %v", err)
	}
}

func TestCreateNoteRequiresActiveSubject(t *testing.T) {
	subjects := testhelpers.SubjectRepoStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.Subject, error) {
			return &model.Subject{ID: id, IsActive: false}, nil
		},
	}
	uc := NewNoteUseCase(testhelpers.NoteRepoStub{}, subjects, testhelpers.OrderRepoStub{})

	if _, err := uc.Create(context.Background(), validNote()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for inactive subject, got %v", err)
	}
}

func TestGetNoteHidesInactiveFromStrangers(t *testing.T) {
	notes := testhelpers.NoteRepoStub{
		GetViewFn: func(_ context.Context, id int64) (*model.NoteView, error) {
			return &model.NoteView{Note: model.Note{ID: id, Title: "n", IsActive: false}}, nil
		},
	}

	t.Run("anonymous", func(t *testing.T) {
		uc := NewNoteUseCase(notes, testhelpers.SubjectRepoStub{}, testhelpers.OrderRepoStub{})
		if _, _, err := uc.Get(context.Background(), 1, 0, ""); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("admin sees it", func(t *testing.T) {
		uc := NewNoteUseCase(notes, testhelpers.SubjectRepoStub{}, testhelpers.OrderRepoStub{})
		if _, _, err := uc.Get(context.Background(), 1, 2, model.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("buyer sees it", func(t *testing.T) {
		orders := testhelpers.OrderRepoStub{
			HasCompletedWithNoteFn: func(context.Context, int64, int64) (bool, error) { return true, nil },
		}
		uc := NewNoteUseCase(notes, testhelpers.SubjectRepoStub{}, orders)
		view, purchased, err := uc.Get(context.Background(), 1, 2, model.RoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !purchased {
			t.Fatal("expected purchased flag")
		}
		if view.ID != 1 {
			t.Fatalf("unexpected note %d", view.ID)
		}
	})
}

func TestCanDownloadGate(t *testing.T) {
	t.Run("admin bypasses purchase", func(t *testing.T) {
		uc := NewNoteUseCase(testhelpers.NoteRepoStub{}, testhelpers.SubjectRepoStub{}, testhelpers.OrderRepoStub{})
		if _, err := uc.CanDownload(context.Background(), 1, 9, model.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("buyer allowed", func(t *testing.T) {
		orders := testhelpers.OrderRepoStub{
			HasCompletedWithNoteFn: func(context.Context, int64, int64) (bool, error) { return true, nil },
		}
		uc := NewNoteUseCase(testhelpers.NoteRepoStub{}, testhelpers.SubjectRepoStub{}, orders)
		if _, err := uc.CanDownload(context.Background(), 1, 9, model.RoleUser); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-buyer forbidden", func(t *testing.T) {
		uc := NewNoteUseCase(testhelpers.NoteRepoStub{}, testhelpers.SubjectRepoStub{}, testhelpers.OrderRepoStub{})
		if _, err := uc.CanDownload(context.Background(), 1, 9, model.RoleUser); !errors.Is(err, domainErrors.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("deactivated note stays downloadable for buyer", func(t *testing.T) {
		notes := testhelpers.NoteRepoStub{
			GetByIDFn: func(_ context.Context, id int64) (*model.Note, error) {
				return &model.Note{ID: id, FileName: "f.pdf", IsActive: false}, nil
			},
		}
		orders := testhelpers.OrderRepoStub{
			HasCompletedWithNoteFn: func(context.Context, int64, int64) (bool, error) { return true, nil },
		}
		uc := NewNoteUseCase(notes, testhelpers.SubjectRepoStub{}, orders)
		if _, err := uc.CanDownload(context.Background(), 1, 9, model.RoleUser); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
