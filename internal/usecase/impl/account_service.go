// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fitznet/internal/delivery/context"
	"fitznet/internal/domain/entity"
	domainerrors "fitznet/internal/domain/errors"
	"fitznet/internal/domain/repository"
	"fitznet/internal/domain/service"
	"fitznet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

const (
	loginSuccessMessage = "Login successful"
	loginFailureMessage = "Invalid username or password"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create normalizes the candidate, enforces uniqueness and the password
// policy, hashes the password and persists the account. Username and email
// uniqueness is case-insensitive because both are stored lowercase.
func (srv *accountService) Create(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	username := strings.ToLower(input.Username)
	email := strings.ToLower(input.Email)

	srv.log(ctx).Info("Creating account", slog.String("username", username))

	if err := srv.checkUsernameFree(ctx, username); err != nil {
		return nil, err
	}
	if err := srv.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	if len(input.Password) < minPasswordLength {
		srv.log(ctx).Warn("Password too short on account creation", slog.String("username", username))

		return nil, domainerrors.ErrPasswordTooShort
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during account creation", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during account creation")
	}

	account := &entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account created", slog.Any("accountID", account.ID))

	return account, nil
}

func (srv *accountService) checkUsernameFree(ctx context.Context, username string) error {
	_, err := srv.accountRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.log(ctx).Warn("Username already exists", slog.String("username", username))

		return domainerrors.ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username uniqueness")
	}

	return nil
}

func (srv *accountService) checkEmailFree(ctx context.Context, email string) error {
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Email already in use", slog.String("email", email))

		return domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	return nil
}

// Read retrieves a single account by username.
func (srv *accountService) Read(ctx context.Context, username string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to read account")
	}

	return account, nil
}

// ReadAll retrieves every stored account.
func (srv *accountService) ReadAll(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// Update delegates to the store's atomic conditional update. A selector that
// matches no account and a patch with nothing to apply both surface as
// NotFound; password strength is not re-validated here.
func (srv *accountService) Update(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating account", slog.String("username", input.Username))

	patch := repository.AccountPatch{
		UpdatedUsername: input.UpdatedUsername,
		UpdatedEmail:    input.UpdatedEmail,
		UpdatedPassword: input.UpdatedPassword,
	}

	account, err := srv.accountRepo.ConditionalUpdate(ctx, input.Username, patch)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) || errors.Is(err, repository.ErrEmptyPatch) {
			srv.log(ctx).Warn("Account not found or nothing to update", slog.String("username", input.Username))

			return nil, domainerrors.ErrAccountNotFound.WithDetails("User not found or nothing to update")
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	return account, nil
}

// Delete removes the account with the given username. The existence check
// happens here; the store-level delete itself is a no-op when absent.
func (srv *accountService) Delete(ctx context.Context, username string) error {
	srv.log(ctx).Info("Deleting account", slog.String("username", username))

	if _, err := srv.accountRepo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to look up account before delete")
	}

	if err := srv.accountRepo.DeleteByUsername(ctx, username); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// VerifyPassword reports whether the raw password matches the stored digest.
// A missing account yields false, not an error.
func (srv *accountService) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up account for verification")
	}

	return srv.hasher.Check(password, account.PasswordHash), nil
}

// Login performs a single stateless credential check. No token is issued and
// no session state is kept. The failure message stays generic so callers
// cannot tell which of username or password was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return &usecase.LoginOutput{Success: false, Message: loginFailureMessage}, nil
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return &usecase.LoginOutput{Success: false, Message: loginFailureMessage}, nil
	}

	return &usecase.LoginOutput{
		Success:  true,
		Message:  loginSuccessMessage,
		Username: account.Username,
		Email:    account.Email,
	}, nil
}
