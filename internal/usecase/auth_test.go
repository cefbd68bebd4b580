package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	testhelpers "github.com/notemart/notemart/internal/test"
)

func newAuthUseCaseForTest(users testhelpers.UserRepoStub) *AuthUseCase {
	return NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, discardLogger())
}

func TestRegisterValidation(t *testing.T) {
	uc := newAuthUseCaseForTest(testhelpers.UserRepoStub{})

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@b.com", "secret1"},
		{"bad email", "Alice", "not-an-email", "secret1"},
		{"short password", "Alice", "a@b.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Register(context.Background(), tc.userName, tc.email, tc.password)
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegisterCreatesUserWithToken(t *testing.T) {
	var storedHash string
	users := testhelpers.UserRepoStub{
		CreateFn: func(_ context.Context, name, email, hash string, role model.Role) (*model.User, error) {
			storedHash = hash
			if role != model.RoleUser {
				t.Fatalf("expected user role, got %s", role)
			}
			if email != "alice@example.com" {
				t.Fatalf("expected lowercased email, got %q", email)
			}
			return &model.User{ID: 3, Name: name, Email: email, PasswordHash: hash, Role: role}, nil
		},
	}
	uc := newAuthUseCaseForTest(users)

	user, token, err := uc.Register(context.Background(), "Alice", "Alice@Example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token")
	}
	if user.ID != 3 {
		t.Fatalf("unexpected user id %d", user.ID)
	}
	if storedHash == "secret1" {
		t.Fatal("password must not be stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := testhelpers.UserRepoStub{
		CreateFn: func(_ context.Context, _, _, _ string, _ model.Role) (*model.User, error) {
			return nil, domainErrors.Conflict("email already registered")
		},
	}
	uc := newAuthUseCaseForTest(users)

	_, _, err := uc.Register(context.Background(), "Alice", "a@b.com", "secret1")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	users := testhelpers.UserRepoStub{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email, PasswordHash: "hash:secret1", Role: model.RoleUser}, nil
		},
	}
	uc := newAuthUseCaseForTest(users)

	if _, _, err := uc.Authenticate(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "a@b.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticateUnknownEmailHidesExistence(t *testing.T) {
	uc := newAuthUseCaseForTest(testhelpers.UserRepoStub{})

	_, _, err := uc.Authenticate(context.Background(), "nobody@b.com", "secret1")
	if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestSeedAdminPromotesExistingUser(t *testing.T) {
	promoted := false
	users := testhelpers.UserRepoStub{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			return &model.User{ID: 4, Email: email, Role: model.RoleUser}, nil
		},
		SetRoleFn: func(_ context.Context, id int64, role model.Role) error {
			promoted = id == 4 && role == model.RoleAdmin
			return nil
		},
	}
	uc := newAuthUseCaseForTest(users)

	if err := uc.SeedAdmin(context.Background(), "admin@b.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !promoted {
		t.Fatal("expected existing user to be promoted")
	}
}

func TestSeedAdminCreatesAccount(t *testing.T) {
	created := false
	users := testhelpers.UserRepoStub{
		CreateFn: func(_ context.Context, _, email, _ string, role model.Role) (*model.User, error) {
			created = role == model.RoleAdmin
			return &model.User{ID: 1, Email: email, Role: role}, nil
		},
	}
	uc := newAuthUseCaseForTest(users)

	if err := uc.SeedAdmin(context.Background(), "admin@b.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected admin account to be created")
	}
}

func TestSeedAdminSkippedWithoutCredentials(t *testing.T) {
	users := testhelpers.UserRepoStub{
		GetByEmailFn: func(context.Context, string) (*model.User, error) {
			t.Fatal("seeding must be skipped without credentials")
			return nil, nil
		},
	}
	uc := newAuthUseCaseForTest(users)

	if err := uc.SeedAdmin(context.Background(), "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
