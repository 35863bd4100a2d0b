package models

import "time"

// User is the row stored in the users table.
type User struct {
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
