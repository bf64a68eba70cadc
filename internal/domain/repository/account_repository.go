// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fitznet/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrEmptyPatch is returned by ConditionalUpdate when the patch carries no
// fields to apply. No write is performed in that case.
var ErrEmptyPatch = errors.New("patch contains no fields to apply")

// AccountPatch is a sparse update: nil fields are left untouched.
// UpdatedPassword carries the plaintext; the store hashes it before writing.
type AccountPatch struct {
	UpdatedUsername *string
	UpdatedEmail    *string
	UpdatedPassword *string
}

// IsEmpty reports whether the patch carries no fields to apply.
func (p AccountPatch) IsEmpty() bool {
	return p.UpdatedUsername == nil && p.UpdatedEmail == nil && p.UpdatedPassword == nil
}

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindAll retrieves every stored account.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// DeleteByUsername removes the account with the given username.
	// Deleting a username that does not exist is a no-op, not an error.
	DeleteByUsername(ctx context.Context, username string) error

	// ConditionalUpdate atomically locates the account matching selectorUsername,
	// applies the non-nil patch fields and returns the post-update record.
	// The whole read-modify-write runs as a single statement against the backing
	// store, so concurrent patches against the same account cannot lose updates.
	// Returns ErrAccountNotFound when no account matches and ErrEmptyPatch when
	// the patch has nothing to apply.
	ConditionalUpdate(ctx context.Context, selectorUsername string, patch AccountPatch) (*entity.Account, error)
}
