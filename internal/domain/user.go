package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinUsernameLength is the minimum number of characters in a username.
const MinUsernameLength = 3

// MinPasswordLength is the minimum number of characters in a plaintext
// password. Enforced by the user directory before the password is hashed;
// the hash itself carries no length policy.
const MinPasswordLength = 3

// User represents a registered author. The password hash never leaves the
// persistence and credential layers.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// NewUser creates a User with a fresh ID and timestamps. The caller supplies
// an already-hashed password; plaintext never reaches the domain layer.
// Returns a validation error if the username is too short or the hash is
// empty.
func NewUser(username, name, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		Name:           name,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User holds persistable data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if len(u.Username) < MinUsernameLength {
		return ErrUsernameTooShort
	}

	if u.HashedPassword == "" {
		return ErrEmptyPasswordHash
	}

	return nil
}
