package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation is a booked lesson slot.
type Reservation struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	UserID    uuid.UUID  `json:"user_id"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	MenuID    uuid.UUID  `json:"menu_id"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    time.Time  `json:"ends_at"`
	Status    string     `json:"status"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ValidReservationStatus reports whether s is a known reservation status.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}
