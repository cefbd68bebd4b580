package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
)

// ContactUseCase accepts visitor messages and serves the admin inbox.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase creates contact use case.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// Submit validates and stores a contact message.
func (uc *ContactUseCase) Submit(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateRequired(name, "name"); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateRequired(subject, "subject"); err != nil {
		return nil, err
	}
	if err := validateRequired(message, "message"); err != nil {
		return nil, err
	}

	return uc.contacts.Create(ctx, name, email, subject, message)
}

// List returns all messages, newest first.
func (uc *ContactUseCase) List(ctx context.Context) ([]model.Contact, error) {
	return uc.contacts.List(ctx)
}

// Delete removes a message.
func (uc *ContactUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("message not found")
		}
		return err
	}
	return nil
}
