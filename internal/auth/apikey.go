package auth

import "github.com/google/uuid"

// NewAPIKey generates a fresh API key for a registered user.
func NewAPIKey() string {
	return uuid.NewString()
}
