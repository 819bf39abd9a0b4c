package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated golf school deployment. Every persisted
// resource belongs to exactly one tenant. Tenants are never hard-deleted
// while referenced; deactivation flips IsActive instead.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
