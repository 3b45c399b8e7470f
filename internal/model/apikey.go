// Package model defines domain entities for the application.
package model

import "time"

// APIKey represents a service API key. Keys authenticate callers of the
// HTTP API; they are unrelated to the usernames that own image records.
type APIKey struct {
	ID         string     `json:"id"`
	KeyHash    string     `json:"-"` // Never serialize
	KeyPrefix  string     `json:"key_prefix"`
	Label      string     `json:"label,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsRevoked returns true if the key has been revoked.
func (k *APIKey) IsRevoked() bool {
	return k.RevokedAt != nil
}

// AuthContext holds authenticated request context.
// This is injected into the request context by auth middleware.
type AuthContext struct {
	KeyID     string
	KeyPrefix string
}
