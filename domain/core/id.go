package core

import "github.com/google/uuid"

// ID is an opaque identifier for runs and stored artifacts.
type ID string

// NewID generates a new random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string {
	return string(id)
}
