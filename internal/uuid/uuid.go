// Package uuid provides a UUID that gin can bind from URI and query
// parameters.
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID is a uuid.UUID that implements binding.BindUnmarshaler.
type UUID struct {
	uuid.UUID
}

// Nil is the zero UUID. Unset parameters bind to it.
var Nil UUID

func New() UUID {
	return UUID{uuid.New()}
}

func (u UUID) IsNil() bool {
	return u.UUID == uuid.Nil
}

// Ptr returns a pointer to the wrapped UUID, or nil for the Nil UUID.
// Optional references on models are nil when unset.
func (u UUID) Ptr() *uuid.UUID {
	if u.IsNil() {
		return nil
	}

	id := u.UUID
	return &id
}

// UnmarshalParam parses a parameter. An empty parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	id, err := uuid.Parse(p)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid UUID: %w", p, err)
	}

	u.UUID = id
	return nil
}
