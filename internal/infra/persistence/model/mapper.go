package model

import "fitznet/internal/domain/entity"

// ToAccountDomain converts a GORM AccountModel to a domain Account entity.
func ToAccountDomain(data *AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// FromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func FromAccountDomain(data *entity.Account) *AccountModel {
	if data == nil {
		return nil
	}

	return &AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
