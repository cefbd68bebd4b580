package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	testhelpers "github.com/notemart/notemart/internal/test"
)

func TestSubmitContactValidation(t *testing.T) {
	uc := NewContactUseCase(testhelpers.ContactRepoStub{})

	cases := []struct {
		name    string
		contact [4]string
	}{
		{"empty name", [4]string{"", "a@b.com", "hi", "msg"}},
		{"bad email", [4]string{"Bob", "nope", "hi", "msg"}},
		{"empty subject", [4]string{"Bob", "a@b.com", "  ", "msg"}},
		{"empty message", [4]string{"Bob", "a@b.com", "hi", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), tc.contact[0], tc.contact[1], tc.contact[2], tc.contact[3])
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSubmitContactStoresTrimmedFields(t *testing.T) {
	var got model.Contact
	contacts := testhelpers.ContactRepoStub{
		CreateFn: func(_ context.Context, name, email, subject, message string) (*model.Contact, error) {
			got = model.Contact{Name: name, Email: email, Subject: subject, Message: message}
			return &model.Contact{ID: 1, Name: name, Email: email, Subject: subject, Message: message}, nil
		},
	}
	uc := NewContactUseCase(contacts)

	if _, err := uc.Submit(context.Background(), " Bob ", " Bob@B.com ", " Question ", " Hello "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Bob" || got.Email != "bob@b.com" || got.Subject != "Question" || got.Message != "Hello" {
		t.Fatalf("expected trimmed, lowercased fields, got %+v", got)
	}
}

func TestDeleteContactNotFound(t *testing.T) {
	contacts := testhelpers.ContactRepoStub{
		DeleteFn: func(context.Context, int64) error { return domainErrors.ErrNotFound },
	}
	uc := NewContactUseCase(contacts)

	if err := uc.Delete(context.Background(), 7); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
