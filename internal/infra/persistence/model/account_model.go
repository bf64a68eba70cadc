// Package model defines the GORM persistence models and their mapping to domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel is the GORM representation of an account row.
// Unique indexes on username and email back the uniqueness invariant;
// the lowercase normalization happens in the service before any write.
type AccountModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns the store-side identifier. The ID is opaque to callers
// and immutable once set.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
