package domain

import "time"

// User represents a registered ledger owner in the domain.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique, stored lower-cased
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) GetUserID() string { return u.UserID }
func (u *User) GetName() string   { return u.Name }
func (u *User) GetEmail() string  { return u.Email }
