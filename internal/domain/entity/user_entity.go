package entity

import (
	"time"
)

// User is the aggregate root for the auth domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the API shape of a user. The password hash never leaves the
// data layer through this type.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the credential from a user for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
