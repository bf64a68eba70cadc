package handler

import (
	"context"
	"io"
	"log/slog"

	"fitznet/internal/domain/entity"
	"fitznet/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// mockAccountUsecase is a testify mock for usecase.AccountUsecase.
type mockAccountUsecase struct {
	mock.Mock
}

func (m *mockAccountUsecase) Create(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountUsecase) Read(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountUsecase) ReadAll(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *mockAccountUsecase) Update(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountUsecase) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)

	return args.Error(0)
}

func (m *mockAccountUsecase) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)

	return args.Bool(0), args.Error(1)
}

func (m *mockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

// mockTextCipher is a testify mock for service.TextCipher.
type mockTextCipher struct {
	mock.Mock
}

func (m *mockTextCipher) Encrypt(plaintext string) (string, error) {
	args := m.Called(plaintext)

	return args.String(0), args.Error(1)
}

func (m *mockTextCipher) Decrypt(encoded string) (string, error) {
	args := m.Called(encoded)

	return args.String(0), args.Error(1)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
