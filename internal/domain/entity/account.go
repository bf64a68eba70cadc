// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single user account.
// Username and Email are stored lowercase; normalization happens once, at creation.
// PasswordHash holds the bcrypt digest of the password. The plaintext is never persisted.
type Account struct {
	ID           uuid.UUID // Store-assigned identifier, immutable once set.
	Username     string    // Unique login name, lowercase.
	Email        string    // Unique contact email, lowercase.
	PasswordHash string    // Salted bcrypt digest of the account password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
