package impl

import (
	"context"
	"testing"

	"fitznet/internal/domain/entity"
	domainerrors "fitznet/internal/domain/errors"
	"fitznet/internal/domain/repository"
	"fitznet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockAccountRepository
	hasher      *mockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	accountRepo := new(mockAccountRepository)
	hasher := new(mockPasswordHasher)

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	t.Cleanup(func() {
		accountRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestAccountService_Create_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Username: "Alice",
		Email:    "Alice@Example.com",
		Password: "correct12",
	}

	// Uniqueness checks run against the normalized lowercase values.
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "correct12").Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
		}).
		Return(nil)

	account, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, "hashed_password", account.PasswordHash)
}

func TestAccountService_Create_UsernameConflict(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{ID: uuid.New(), Username: "alice"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(existing, nil)

	_, err := fx.service.Create(ctx, &usecase.CreateAccountInput{
		Username: "ALICE",
		Email:    "alice@example.com",
		Password: "correct12",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Create_EmailConflict(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{ID: uuid.New(), Email: "alice@example.com"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(existing, nil)

	_, err := fx.service.Create(ctx, &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "correct12",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Create_PasswordLength(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)

	// 7 characters is rejected before any hash or write.
	_, err := fx.service.Create(ctx, &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "1234567",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_Create_MinimumPasswordLengthSucceeds(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "12345678").Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	_, err := fx.service.Create(ctx, &usecase.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "12345678",
	})

	assert.NoError(t, err)
}

func TestAccountService_Read(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(existing, nil)

	account, err := fx.service.Read(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, existing, account)
}

func TestAccountService_Read_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Read(ctx, "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ReadAll(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	stored := []*entity.Account{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}
	fx.accountRepo.On("FindAll", ctx).Return(stored, nil)

	accounts, err := fx.service.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAccountService_Update_DelegatesToConditionalUpdate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.UpdateAccountInput{
		Username:        "alice",
		UpdatedUsername: strPtr("alicia"),
	}
	updated := &entity.Account{ID: uuid.New(), Username: "alicia", Email: "alice@example.com"}

	fx.accountRepo.On("ConditionalUpdate", ctx, "alice", repository.AccountPatch{
		UpdatedUsername: strPtr("alicia"),
	}).Return(updated, nil)

	account, err := fx.service.Update(ctx, input)
	require.NoError(t, err)

	// The result reflects the value after the update, not before.
	assert.Equal(t, "alicia", account.Username)
	assert.Equal(t, "alice@example.com", account.Email)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("ConditionalUpdate", ctx, "ghost", mock.Anything).
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Update(ctx, &usecase.UpdateAccountInput{
		Username:        "ghost",
		UpdatedUsername: strPtr("phantom"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Update_EmptyPatchMapsToNotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("ConditionalUpdate", ctx, "alice", repository.AccountPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	_, err := fx.service.Update(ctx, &usecase.UpdateAccountInput{Username: "alice"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{ID: uuid.New(), Username: "alice"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(existing, nil)
	fx.accountRepo.On("DeleteByUsername", ctx, "alice").Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, "alice"))
}

func TestAccountService_Delete_NotFoundBeforeStoreDelete(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	err := fx.service.Delete(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	fx.accountRepo.AssertNotCalled(t, "DeleteByUsername", mock.Anything, mock.Anything)
}

func TestAccountService_VerifyPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{Username: "alice", PasswordHash: "stored_hash"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(existing, nil).Twice()
	fx.hasher.On("Check", "correct12", "stored_hash").Return(true)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	ok, err := fx.service.VerifyPassword(ctx, "alice", "correct12")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.VerifyPassword(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountService_VerifyPassword_MissingAccountIsFalseNotError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	ok, err := fx.service.VerifyPassword(ctx, "ghost", "whatever1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{Username: "alice", Email: "alice@example.com", PasswordHash: "stored_hash"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(existing, nil)
	fx.hasher.On("Check", "correct12", "stored_hash").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "correct12"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "Login successful", output.Message)
	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, "alice@example.com", output.Email)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := &entity.Account{Username: "alice", Email: "alice@example.com", PasswordHash: "stored_hash"}
	fx.accountRepo.On("FindByUsername", ctx, "alice").Return(existing, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, "Invalid username or password", output.Message)
	// No account data leaks on failure.
	assert.Empty(t, output.Username)
	assert.Empty(t, output.Email)
}

func TestAccountService_Login_UnknownUserSameMessage(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever1"})

	require.NoError(t, err)
	assert.False(t, output.Success)
	// Same generic message as a wrong password; the caller cannot tell which part was wrong.
	assert.Equal(t, "Invalid username or password", output.Message)
}
