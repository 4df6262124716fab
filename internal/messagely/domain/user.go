package domain

import "time"

type User struct {
	Username     string
	PasswordHash string // bcrypt encoded
	FirstName    string
	LastName     string
	Phone        string
	JoinAt       time.Time
	LastLoginAt  *time.Time // nil until the first successful login
}

// UserSummary is the listing projection of a user.
type UserSummary struct {
	Username  string
	FirstName string
	LastName  string
}

// Contact is the profile joined onto a message for its counterparty.
type Contact struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}
