package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a customer or administrator of a single tenant.
// ProviderID is the external identity key: the raw LINE user ID for LINE
// logins, or "dev:<username>" for the development bypass.
type User struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	ProviderID *string   `json:"provider_id,omitempty"`
	Name       string    `json:"name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
