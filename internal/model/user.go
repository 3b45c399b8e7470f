// Package model defines domain entities for the application.
package model

import "time"

// User is an identity resolved from a human-supplied username.
// A username maps to exactly one ID; the ID is assigned on first appearance
// of the username and never changes.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
