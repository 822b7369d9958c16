// Package models defines the records persisted by the API server and the
// partial payloads used to create and update them.
package models

import "time"

const RoleAdmin = "admin"

// User is an administrator account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id_user"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
