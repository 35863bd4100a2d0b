package domain

import "time"

// Session is the result of a successful authentication. It is not persisted.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}
