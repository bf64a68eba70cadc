// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fitznet/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create a new account.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
}

// UpdateAccountInput is a sparse patch. Username selects the account;
// only the non-nil Updated fields are applied.
type UpdateAccountInput struct {
	Username        string
	UpdatedUsername *string
	UpdatedEmail    *string
	UpdatedPassword *string
}

// LoginInput defines the data required for a credential check.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput reports the outcome of a credential check. Username and Email
// are only populated on success; the failure message never reveals whether
// the username or the password was wrong.
type LoginOutput struct {
	Success  bool
	Message  string
	Username string
	Email    string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Returned accounts carry the password hash; the delivery layer is responsible
// for keeping it out of responses.
type AccountUsecase interface {
	Create(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)
	Read(ctx context.Context, username string) (*entity.Account, error)
	ReadAll(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, input *UpdateAccountInput) (*entity.Account, error)
	Delete(ctx context.Context, username string) error
	VerifyPassword(ctx context.Context, username, password string) (bool, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
