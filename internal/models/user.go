package models

import "time"

// User captures application-facing fields for an authenticated identity.
// A user owns zero or more contacts; ownership lives on the contact row and
// is enforced by every storage query, never by an in-memory back-reference.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Avatar       string    `json:"avatar,omitempty"`
	RefreshToken string    `json:"-"`
}
