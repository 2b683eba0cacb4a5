package utils

import "github.com/google/uuid"

// NewRunID returns a time-ordered UUIDv7 identifying one sync cycle. It falls
// back to a random UUIDv4 if the clock-based generator fails.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
