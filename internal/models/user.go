package models

// User is an account that can log in, host a place and write reviews.
type User struct {
	Base
	Email        string `json:"email" db:"email"`           // Unique email
	FirstName    string `json:"first_name" db:"first_name"` // ASCII letters only
	LastName     string `json:"last_name" db:"last_name"`   // ASCII letters only
	PasswordHash string `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`     // Admin role flag
}

func (*User) TableName() string { return "users" }
