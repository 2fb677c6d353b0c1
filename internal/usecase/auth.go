package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/domain/repository"
	pkgAuth "github.com/grubtruck/grubtruck/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle, token management and principal
// resolution for incoming requests.
type AuthUseCase struct {
	users  repository.UserRepository
	trucks repository.TruckRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, trucks repository.TruckRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, trucks: trucks, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns an auth token. Registering a
// truck owner also creates the owner's truck.
func (u *AuthUseCase) Register(ctx context.Context, login, password string, role model.Role, truckName string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, "", domainErrors.ErrInvalidInput
	}

	truckName = strings.TrimSpace(truckName)
	if role == model.RoleTruckOwner && truckName == "" {
		return nil, "", domainErrors.ErrInvalidInput
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, login, hash, role)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	if role == model.RoleTruckOwner {
		truck, err := u.trucks.Create(ctx, usr.ID, truckName)
		if err != nil {
			return nil, "", err
		}
		usr.TruckID = &truck.ID
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Resolve turns an opaque credential into the requesting principal.
func (u *AuthUseCase) Resolve(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}

	userID, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.ErrInvalidToken
		}
		return nil, err
	}

	return &model.Principal{UserID: usr.ID, Role: usr.Role, TruckID: usr.TruckID}, nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
