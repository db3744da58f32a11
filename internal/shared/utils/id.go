package utils

import "github.com/google/uuid"

// NewID returns a time-based UUID, falling back to a random one when the
// node clock is unavailable.
func NewID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
