package postgres

import (
	"context"

	"fitznet/internal/domain/entity"
	domainerrors "fitznet/internal/domain/errors"
	"fitznet/internal/domain/repository"
	"fitznet/internal/domain/service"
	"fitznet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
// It carries the password hasher so that ConditionalUpdate can hash a patched
// password inside the same atomic statement flow, keeping plaintext out of the
// stored row under every code path.
type accountRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB, hasher service.PasswordHasher) repository.AccountRepository {
	return &accountRepository{
		db:     db,
		hasher: hasher,
	}
}

// FindByUsername retrieves a single account by its username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return model.ToAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return model.ToAccountDomain(&accountM), nil
}

// FindAll retrieves every stored account.
func (repo *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	if err := repo.db.WithContext(ctx).Order("username").Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, model.ToAccountDomain(&accountModels[i]))
	}

	return accounts, nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := model.FromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors. The unique indexes are the
		// backstop for the narrow race window between the service's uniqueness
		// pre-checks and this insert.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate the generated ID and timestamps back onto the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// DeleteByUsername removes the account with the given username.
// Deleting a username that does not exist is a no-op, not an error.
func (repo *accountRepository) DeleteByUsername(ctx context.Context, username string) error {
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.AccountModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete account by username")
	}

	return nil
}

// ConditionalUpdate atomically applies the non-nil patch fields to the account
// matching selectorUsername and returns the post-update record. The whole
// operation is a single UPDATE ... RETURNING statement, so concurrent patches
// against the same account serialize at the row and cannot lose updates.
func (repo *accountRepository) ConditionalUpdate(ctx context.Context, selectorUsername string, patch repository.AccountPatch) (*entity.Account, error) {
	updates, err := repo.buildPatchUpdates(patch)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, repository.ErrEmptyPatch
	}

	var accountM model.AccountModel
	result := repo.db.WithContext(ctx).
		Model(&accountM).
		Clauses(clause.Returning{}).
		Where("username = ?", selectorUsername).
		Updates(updates)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("updated username or email already exists")
		}

		return nil, errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return model.ToAccountDomain(&accountM), nil
}

// buildPatchUpdates maps the sparse patch onto column assignments,
// hashing a patched password before it goes anywhere near the store.
func (repo *accountRepository) buildPatchUpdates(patch repository.AccountPatch) (map[string]any, error) {
	updates := make(map[string]any)

	if patch.UpdatedUsername != nil {
		updates["username"] = *patch.UpdatedUsername
	}
	if patch.UpdatedEmail != nil {
		updates["email"] = *patch.UpdatedEmail
	}
	if patch.UpdatedPassword != nil {
		hashed, err := repo.hasher.Hash(*patch.UpdatedPassword)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash updated password")
		}
		updates["password_hash"] = hashed
	}

	return updates, nil
}
