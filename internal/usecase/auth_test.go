package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	pkgAuth "github.com/grubtruck/grubtruck/internal/pkg/auth"
	testhelpers "github.com/grubtruck/grubtruck/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterCustomer(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	trucks := &testhelpers.TruckRepositoryStub{}
	uc := NewAuthUseCase(repo, trucks, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "alice", "password", model.RoleCustomer, "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.TruckID != nil {
		t.Fatalf("customer must not own a truck, got %v", *user.TruckID)
	}
	if len(trucks.Trucks) != 0 {
		t.Fatalf("no truck should be created for customers")
	}
	stored, err := repo.GetByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterOwnerCreatesTruck(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	trucks := &testhelpers.TruckRepositoryStub{}
	uc := NewAuthUseCase(repo, trucks, testhelpers.HasherStub{}, newStrategyStub())

	user, _, err := uc.Register(context.Background(), "bob", "secret", model.RoleTruckOwner, "Taco Cart")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.TruckID == nil {
		t.Fatal("expected truck to be attached to owner")
	}
	if len(trucks.Trucks) != 1 || trucks.Trucks[0].Name != "Taco Cart" || trucks.Trucks[0].OwnerID != user.ID {
		t.Fatalf("unexpected created truck %+v", trucks.Trucks)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.TruckRepositoryStub{}, testhelpers.HasherStub{}, newStrategyStub())
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, "", "pass", model.RoleCustomer, ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty login, got %v", err)
	}
	if _, _, err := uc.Register(ctx, "user", "", model.RoleCustomer, ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
	if _, _, err := uc.Register(ctx, "user", "pass", model.Role("admin"), ""); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if _, _, err := uc.Register(ctx, "user", "pass", model.RoleTruckOwner, "  "); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for owner without truck name, got %v", err)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.TruckRepositoryStub{}, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob", "secret", model.RoleCustomer, ""); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob", "secret", model.RoleCustomer, ""); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.TruckRepositoryStub{}, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol", "123456", model.RoleCustomer, ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Login != "carol" || token == "" {
		t.Fatalf("unexpected authenticate result %+v %q", user, token)
	}

	if _, _, err := uc.Authenticate(ctx, "carol", "wrong"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown login, got %v", err)
	}
}

func TestAuthUseCaseResolve(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	trucks := &testhelpers.TruckRepositoryStub{}
	uc := NewAuthUseCase(repo, trucks, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "dave", "pass", model.RoleTruckOwner, "Grill")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	principal, err := uc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if principal.UserID != user.ID || principal.Role != model.RoleTruckOwner {
		t.Fatalf("unexpected principal %+v", principal)
	}
	if principal.TruckID == nil || *principal.TruckID != *user.TruckID {
		t.Fatalf("expected truck id on principal, got %+v", principal.TruckID)
	}

	if _, err := uc.Resolve(ctx, ""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
	if _, err := uc.Resolve(ctx, "garbage"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage token, got %v", err)
	}
	if _, err := uc.Resolve(ctx, "token-999"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for deleted user, got %v", err)
	}
}
